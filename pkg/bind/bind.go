// Package bind decodes a posted HTML form into a struct and validates it.
package bind

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/validate"
)

// maxMultipartMemory caps in-memory buffering of multipart bodies (file
// uploads spill to disk beyond this).
const maxMultipartMemory = 8 << 20 // 8 MB

// Form populates dest's fields from the request's form values using `form`
// struct tags, then runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body cannot be parsed at all.
func Form(r *http.Request, dest interface{}) (map[string]string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("bind: parse multipart form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("bind: parse form: %w", err)
	}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: dest must be a struct pointer")
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("form")
		if tag == "" || tag == "-" {
			continue
		}

		raw := strings.TrimSpace(r.PostFormValue(tag))
		if raw == "" {
			continue
		}

		if err := setField(rv.Field(i), raw); err != nil {
			return map[string]string{tag: fmt.Sprintf("The %s field is invalid.", tag)}, nil
		}
	}

	errs := validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

func setField(v reflect.Value, raw string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Bool:
		v.SetBool(raw == "true" || raw == "1" || raw == "on")
	default:
		return fmt.Errorf("bind: unsupported field kind %s", v.Kind())
	}
	return nil
}
