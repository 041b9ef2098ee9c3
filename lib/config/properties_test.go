package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfigBase(values map[string]string) *ConfigBase {
	c := newConfigBase(MapReader(values))
	if err := c.Initialize("test.properties"); err != nil {
		panic(err)
	}
	return c
}

func TestRequiredPropertyMissing(t *testing.T) {
	c := testConfigBase(nil)
	_, err := requiredProperty[int](c, "absent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingProperty))
}

func TestRequiredPropertyInvalidInt(t *testing.T) {
	c := testConfigBase(map[string]string{"threads": "lots"})
	_, err := requiredProperty[int](c, "threads")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPropertyValue))
}

func TestRequiredPropertyTypes(t *testing.T) {
	c := testConfigBase(map[string]string{
		"s":   "hello",
		"b":   "true",
		"i":   "-42",
		"i32": "2147483647",
		"u16": "8080",
		"u64": "18446744073709551615",
	})

	s, err := requiredProperty[string](c, "s")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	b, err := requiredProperty[bool](c, "b")
	require.NoError(t, err)
	assert.True(t, b)

	i, err := requiredProperty[int](c, "i")
	require.NoError(t, err)
	assert.Equal(t, -42, i)

	i32, err := requiredProperty[int32](c, "i32")
	require.NoError(t, err)
	assert.Equal(t, int32(2147483647), i32)

	u16, err := requiredProperty[uint16](c, "u16")
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), u16)

	u64, err := requiredProperty[uint64](c, "u64")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), u64)
}

// TestBoolPropertyCanonicalForms verifies only "true"/"false" parse; the
// looser strconv forms are rejected.
func TestBoolPropertyCanonicalForms(t *testing.T) {
	for raw, want := range map[string]bool{"true": true, "false": false} {
		c := testConfigBase(map[string]string{"flag": raw})
		got, err := requiredProperty[bool](c, "flag")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, raw := range []string{"TRUE", "True", "1", "0", "t", "f", "yes"} {
		c := testConfigBase(map[string]string{"flag": raw})
		_, err := requiredProperty[bool](c, "flag")
		require.Error(t, err, "raw %q", raw)
		assert.True(t, errors.Is(err, ErrInvalidPropertyValue), "raw %q", raw)
	}
}

func TestOptionalPropertyAbsent(t *testing.T) {
	c := testConfigBase(nil)
	_, ok, err := optionalProperty[int](c, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOptionalPropertyInvalidStillFails(t *testing.T) {
	c := testConfigBase(map[string]string{"port": "eighty"})
	_, _, err := optionalProperty[uint16](c, "port")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPropertyValue))
}

func TestOptionalPropertyRangeCheck(t *testing.T) {
	c := testConfigBase(map[string]string{"port": "70000"})
	_, _, err := optionalProperty[uint16](c, "port")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPropertyValue))
}

func TestPropertyOrDefault(t *testing.T) {
	c := testConfigBase(map[string]string{"present": "7"})

	v, err := propertyOr(c, "present", int32(3))
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)

	v, err = propertyOr(c, "absent", int32(3))
	require.NoError(t, err)
	assert.Equal(t, int32(3), v)
}
