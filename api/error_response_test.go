package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

// local validator, for Field() in ValidationErrors to return json-name
func newValidatorJSON() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestExtractErrorFields_NonValidationError(t *testing.T) {
	fields := ExtractErrorFields(errors.New("not a validation error"))
	require.Empty(t, fields)
}

func TestExtractErrorFields_TagMessages(t *testing.T) {
	type bodyRequired struct {
		Body string `json:"body" validate:"required"`
	}
	type titleMax struct {
		Title string `json:"title" validate:"max=3"`
	}
	type limitRange struct {
		Limit int `json:"limit" validate:"min=1,max=100"`
	}
	type offsetGte struct {
		Offset int `json:"offset" validate:"gte=0"`
	}
	type modeOneOf struct {
		Mode string `json:"mode" validate:"oneof=view editor"`
	}
	type requestID struct {
		ID string `json:"id" validate:"uuid"`
	}
	type color struct {
		Color string `json:"color" validate:"hexcolor"`
	}

	testCases := []struct {
		name    string
		value   any
		field   string
		message string
	}{
		{"required", bodyRequired{}, "body", "this field is required"},
		{"max", titleMax{Title: "abcd"}, "title", "value is too long"},
		{"min", limitRange{Limit: 0}, "limit", "value is too short"},
		{"gte", offsetGte{Offset: -1}, "offset", "must be greater than or equal to the allowed minimum"},
		{"oneof", modeOneOf{Mode: "print"}, "mode", "must be one of the allowed values"},
		{"uuid", requestID{ID: "not-a-uuid"}, "id", "invalid UUID format"},
		// valid tag without a dedicated message
		{"fallback", color{Color: "#zzzzzz"}, "color", "invalid input"},
	}

	v := newValidatorJSON()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.value)
			require.Error(t, err)

			fields := ExtractErrorFields(err)
			require.Len(t, fields, 1)
			require.Equal(t, tc.field, fields[0].FieldName)
			require.Equal(t, tc.message, fields[0].ErrorMessage)
		})
	}
}

func TestExtractErrorFields_Multiple(t *testing.T) {
	type S struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
	}

	fields := ExtractErrorFields(newValidatorJSON().Struct(S{}))
	require.Equal(t, []ErrorField{
		{FieldName: "title", ErrorMessage: "this field is required"},
		{FieldName: "body", ErrorMessage: "this field is required"},
	}, fields)
}

func TestGetBindingErrorMessage(t *testing.T) {
	tags := []string{
		"required", "min", "max", "len", "email", "url", "alphanum", "alpha", "numeric",
		"gte", "lte", "gt", "lt", "oneof", "uuid", "ip", "ipv4", "ipv6", "startswith", "endswith",
	}

	seen := make(map[string]string, len(tags))
	for _, tag := range tags {
		msg := getBindingErrorMessage(tag)
		require.NotEqual(t, "invalid input", msg, tag)

		prev, dup := seen[msg]
		require.False(t, dup, "%s and %s share a message", tag, prev)
		seen[msg] = tag
	}

	require.Equal(t, "invalid input", getBindingErrorMessage("no-such-tag"))
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrInvalidPostID)
	require.Equal(t, ErrInvalidPostID.Error(), resp.Error)
	require.Empty(t, resp.Fields)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"invalid post id"}`, string(data))
}

func TestExtractErrorFromBuffer(t *testing.T) {
	exp := ErrorResponse{
		Error: "invalid params",
		Fields: []ErrorField{
			{FieldName: "body", ErrorMessage: "this field is required"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(exp))

	got, err := extractErrorFromBuffer(&buf)
	require.NoError(t, err)
	require.Equal(t, exp, *got)
}
