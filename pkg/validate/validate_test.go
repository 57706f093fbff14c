package validate_test

import (
	"testing"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/validate"
)

type registerInput struct {
	Username             string `form:"username"              validate:"required,min=3,max=150"`
	Email                string `form:"email"                 validate:"required,email"`
	Password             string `form:"password"              validate:"required,min=8"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required,confirmed"`
	Phone                string `form:"phone"                 validate:"nullable,digits=10"`
	Status               string `form:"status"                validate:"nullable,in=Pending,Out for delivery,Delivered"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Username:             "john_doe",
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		Phone:                "5550100123",
		Status:               "Pending",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"username", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		Username:             "john",
		Email:                "not-an-email",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email error")
	}
}

func TestMinLength(t *testing.T) {
	errs := validate.Struct(registerInput{
		Username:             "jo",
		Email:                "jo@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	})
	if _, ok := errs["username"]; !ok {
		t.Error("expected username min error")
	}
}

func TestConfirmedMismatch(t *testing.T) {
	errs := validate.Struct(registerInput{
		Username:             "john",
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "different",
	})
	if _, ok := errs["password_confirmation"]; !ok {
		t.Error("expected confirmation mismatch error")
	}
}

func TestInRuleWithSpacesInValues(t *testing.T) {
	errs := validate.Struct(registerInput{
		Username:             "john",
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		Status:               "Out for delivery",
	})
	if _, ok := errs["status"]; ok {
		t.Errorf("expected 'Out for delivery' to pass the in rule: %v", errs["status"])
	}

	errs = validate.Struct(registerInput{
		Username:             "john",
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		Status:               "Shipped",
	})
	if _, ok := errs["status"]; !ok {
		t.Error("expected 'Shipped' to fail the in rule")
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	errs := validate.Struct(registerInput{
		Username:             "john",
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		Phone:                "",
	})
	if _, ok := errs["phone"]; ok {
		t.Error("nullable empty phone should not error")
	}
}

func TestDigitsRule(t *testing.T) {
	errs := validate.Struct(registerInput{
		Username:             "john",
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
		Phone:                "555-0100",
	})
	if _, ok := errs["phone"]; !ok {
		t.Error("expected digits error for dashed phone")
	}
}
