package validator

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	RegisterEnum("testcolor", "RED", "LIGHT BLUE")
}

type itemInput struct {
	ProductID String `json:"product_id" validate:"required"`
	Quantity  Number `json:"quantity" input:"required" validate:"gt=0"`
	UnitPrice Number `json:"unit_price" input:"required" validate:"gte=0"`
}

type orderInput struct {
	Name  String      `json:"name" validate:"required,max=10"`
	Email String      `json:"email" validate:"omitempty,email"`
	Color String      `json:"color" validate:"omitempty,testcolor"`
	When  Time        `json:"when"`
	Items []itemInput `json:"orderItems" validate:"required,min=1,dive"`
}

type renameInput struct {
	Name String `json:"name" input:"nonnull" validate:"omitempty,max=10"`
	City String `json:"city"`
}

func decode(t *testing.T, body string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v))
}

func TestString_States(t *testing.T) {
	var in renameInput
	decode(t, `{"name":"  Farm  ","city":"   "}`, &in)

	assert.True(t, in.Name.Valid())
	assert.Equal(t, "Farm", in.Name.Value)
	assert.True(t, in.City.Provided())
	assert.True(t, in.City.IsNull())
	assert.Nil(t, in.City.Ptr())

	var empty renameInput
	decode(t, `{}`, &empty)
	assert.False(t, empty.Name.Provided())
	assert.False(t, empty.City.Provided())
}

func TestNumber_AcceptsNumericStrings(t *testing.T) {
	var n struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
	}
	decode(t, `{"a": 2.5, "b": " 10 ", "c": "abc", "d": ""}`, &n)

	assert.Equal(t, 2.5, n.A.Value)
	assert.Equal(t, 10.0, n.B.Value)
	assert.False(t, n.C.Valid())
	assert.Equal(t, "must be a number", n.C.InputError())
	assert.True(t, n.D.IsNull())
}

func TestTime_Layouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2025-03-01T10:30:00Z"`:      time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		`"2025-03-01T10:30:00-03:00"`: time.Date(2025, 3, 1, 13, 30, 0, 0, time.UTC),
		`"2025-03-01T10:30"`:          time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		`"2025-03-01"`:                time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		var v Time
		require.NoError(t, v.UnmarshalJSON([]byte(raw)))
		assert.True(t, v.Valid(), raw)
		assert.True(t, want.Equal(v.Value), raw)
	}

	var bad Time
	require.NoError(t, bad.UnmarshalJSON([]byte(`"not a date"`)))
	assert.Equal(t, "must be a valid date", bad.InputError())
}

func TestValidate_AggregatesEveryField(t *testing.T) {
	var in orderInput
	decode(t, `{
		"name": "a very long name",
		"email": "nope",
		"color": "GREEN",
		"when": "yesterday",
		"orderItems": [{"product_id": "p1", "quantity": 0, "unit_price": 0}, {"quantity": "x"}]
	}`, &in)

	errs := Validate(&in)
	require.NotNil(t, errs)

	assert.Equal(t, []string{
		"color",
		"email",
		"name",
		"orderItems[0].quantity",
		"orderItems[1].product_id",
		"orderItems[1].quantity",
		"orderItems[1].unit_price",
		"when",
	}, errs.Fields())
	assert.Equal(t, []string{"must be a number"}, errs["orderItems[1].quantity"])
	assert.Equal(t, []string{"must be greater than 0"}, errs["orderItems[0].quantity"])
	assert.Equal(t, []string{"must be one of: RED, LIGHT BLUE"}, errs["color"])
	assert.Equal(t, []string{"is required"}, errs["orderItems[1].product_id"])
	assert.Equal(t, []string{"is required"}, errs["orderItems[1].unit_price"])
}

func TestValidate_RequiresItems(t *testing.T) {
	var in orderInput
	decode(t, `{"name": "ok", "orderItems": []}`, &in)

	errs := Validate(&in)
	assert.Equal(t, []string{"must contain at least 1 item(s)"}, errs["orderItems"])
}

func TestValidate_EnumWithSpaces(t *testing.T) {
	var in orderInput
	decode(t, `{"name": "ok", "color": "LIGHT BLUE", "orderItems": [{"product_id": "p", "quantity": "3", "unit_price": "0"}]}`, &in)

	assert.Nil(t, Validate(&in))
}

func TestValidate_NonNullUpdateField(t *testing.T) {
	var omitted renameInput
	decode(t, `{"city": null}`, &omitted)
	assert.Nil(t, Validate(&omitted))

	var cleared renameInput
	decode(t, `{"name": ""}`, &cleared)
	errs := Validate(&cleared)
	assert.Equal(t, []string{"cannot be empty"}, errs["name"])
}

type gradeInput struct {
	Name  String `json:"name" validate:"required"`
	Grade String `json:"grade"`
	known []string
}

func (in *gradeInput) Check(errs Errors) {
	if !in.Grade.Valid() || len(in.known) == 0 {
		return
	}
	for _, g := range in.known {
		if g == in.Grade.Value {
			return
		}
	}
	errs.Add("grade", "unknown grade")
}

func TestValidate_RunsChecker(t *testing.T) {
	in := gradeInput{known: []string{"A", "B"}}
	decode(t, `{"grade": "C"}`, &in)

	errs := Validate(&in)
	assert.Equal(t, []string{"grade", "name"}, errs.Fields())
	assert.Equal(t, []string{"unknown grade"}, errs["grade"])

	open := gradeInput{}
	decode(t, `{"name": "x", "grade": "C"}`, &open)
	assert.Nil(t, Validate(&open))
}

func TestErrors_Add_KeepsFirstMessage(t *testing.T) {
	errs := Errors{}
	errs.Add("name", "is required")
	errs.Add("name", "is invalid")
	assert.Equal(t, []string{"is required"}, errs["name"])
}

func TestErrors_Details(t *testing.T) {
	errs := Errors{"name": {"is required"}}
	assert.Equal(t, map[string]any{
		"fieldErrors": map[string][]string{"name": {"is required"}},
	}, errs.Details())
}
