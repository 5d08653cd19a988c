package validator

import (
	"strings"
	"testing"

	"foodcart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneRequest struct {
	Phone string `validate:"required,phone"`
}

func TestValidator_Phone(t *testing.T) {
	v := New("RU")

	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "international", phone: "+7 (999) 123-45-67"},
		{name: "national", phone: "89991234567"},
		{name: "too short", phone: "12345", wantErr: true},
		{name: "letters", phone: "call me maybe", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
		{name: "dashes only", phone: "-------", wantErr: true},
		{name: "spaces only", phone: "       ", wantErr: true},
		{name: "brackets only", phone: "(((((((", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&phoneRequest{Phone: tt.phone})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CreateOrderRejectsBlankContacts(t *testing.T) {
	v := New("RU")
	input := &usecase.CreateOrderInput{
		FirstName:   "   ",
		LastName:    "\t",
		PhoneNumber: "-------",
		Address:     "   ",
		Products:    []usecase.OrderProductInput{{ProductID: uuid.New()}},
	}

	err := v.Validate(input)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	failed := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		failed[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"FirstName":   "notblank",
		"LastName":    "notblank",
		"PhoneNumber": "phone",
		"Address":     "notblank",
	}, failed)
}

func TestValidator_CreateOrderAddressLength(t *testing.T) {
	v := New("RU")
	input := &usecase.CreateOrderInput{
		FirstName:   "Ivan",
		LastName:    "Petrov",
		PhoneNumber: "+7 999 123-45-67",
		Address:     strings.Repeat("a", 200),
		Products:    []usecase.OrderProductInput{{ProductID: uuid.New()}},
	}
	require.NoError(t, v.Validate(input))

	input.Address = strings.Repeat("a", 201)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, v.Validate(input), &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Address", verrs[0].Field())
	assert.Equal(t, "max", verrs[0].Tag())
}
