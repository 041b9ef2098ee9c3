package config

import (
	"strconv"

	"github.com/samber/oops"
)

// PropertyValue is the set of types the accessor layer can parse out of a
// raw property string.
type PropertyValue interface {
	string | bool | int | int32 | uint16 | uint64
}

// parseProperty converts a raw string into T. Booleans accept exactly
// "true" and "false"; the looser strconv forms (1, t, TRUE) are rejected.
func parseProperty[T PropertyValue](name, raw string) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *bool:
		switch raw {
		case "true":
			*p = true
		case "false":
			*p = false
		default:
			return out, invalidPropertyValue(name, raw, "bool")
		}
	case *int:
		n, err := strconv.ParseInt(raw, 10, 0)
		if err != nil {
			return out, invalidPropertyValue(name, raw, "int")
		}
		*p = int(n)
	case *int32:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return out, invalidPropertyValue(name, raw, "int32")
		}
		*p = int32(n)
	case *uint16:
		n, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return out, invalidPropertyValue(name, raw, "uint16")
		}
		*p = uint16(n)
	case *uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return out, invalidPropertyValue(name, raw, "uint64")
		}
		*p = n
	}
	return out, nil
}

func invalidPropertyValue(name, raw, kind string) error {
	return oops.Wrapf(ErrInvalidPropertyValue,
		"property %q: value %q is not a valid %s", name, raw, kind)
}

// requiredProperty looks up and parses name, failing when it is absent.
func requiredProperty[T PropertyValue](c *ConfigBase, name string) (T, error) {
	raw, ok := c.Get(name)
	if !ok {
		var zero T
		return zero, oops.Wrapf(ErrMissingProperty, "required property %q is not set", name)
	}
	return parseProperty[T](name, raw)
}

// propertyOr looks up and parses name, substituting def when the property
// is absent. A present but unparsable value is still an error.
func propertyOr[T PropertyValue](c *ConfigBase, name string, def T) (T, error) {
	v, ok, err := optionalProperty[T](c, name)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// optionalProperty looks up and parses name. Absence is not an error, a
// present but unparsable value still is.
func optionalProperty[T PropertyValue](c *ConfigBase, name string) (T, bool, error) {
	raw, ok := c.Get(name)
	if !ok {
		var zero T
		return zero, false, nil
	}
	v, err := parseProperty[T](name, raw)
	if err != nil {
		return v, false, err
	}
	return v, true, nil
}
