package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/Olpagroup25/insa/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleValidationError(t *testing.T) {
	type input struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required,max=5"`
	}

	SetupValidator()
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req input
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	t.Run("lists each rejected field by json name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"email":"invalid","name":"too long"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 2)
		assert.Equal(t, "email", resp.Error.Details[0].Field)
		assert.Equal(t, "Invalid email format", resp.Error.Details[0].Message)
		assert.Equal(t, "name", resp.Error.Details[1].Field)
		assert.Equal(t, "Must be at most 5 characters", resp.Error.Details[1].Message)
	})

	t.Run("valid input passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"email":"a@b.com","name":"ok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestValidationMessage(t *testing.T) {
	type sample struct {
		Required string  `validate:"required"`
		Min      string  `validate:"min=5"`
		UUID     string  `validate:"omitempty,uuid"`
		OneOf    string  `validate:"omitempty,oneof=portal internal"`
		Latitude float64 `validate:"min=-90,max=90"`
	}

	err := validator.New().Struct(sample{Min: "ab", UUID: "nope", OneOf: "admin", Latitude: -120})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	got := map[string]string{}
	for _, e := range verrs {
		got[e.Field()] = validationMessage(e)
	}
	assert.Equal(t, "This field is required", got["Required"])
	assert.Equal(t, "Must be at least 5 characters", got["Min"])
	assert.Equal(t, "Invalid UUID format", got["UUID"])
	assert.Equal(t, "Must be one of: portal internal", got["OneOf"])
	assert.Equal(t, "Must be at least -90", got["Latitude"])
}

func TestFieldName(t *testing.T) {
	type sample struct {
		JSON     string `json:"pickup_hours,omitempty"`
		Form     string `form:"login"`
		Both     string `json:"redirect" form:"next"`
		Hidden   string `json:"-"`
		Untagged string
	}
	typ := reflect.TypeOf(sample{})

	want := []string{"pickup_hours", "login", "redirect", "", ""}
	for i, name := range want {
		assert.Equal(t, name, fieldName(typ.Field(i)), typ.Field(i).Name)
	}
}
