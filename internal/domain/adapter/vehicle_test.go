package adapter

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fleetVehicle = `{"id":"v1","userId":"u1","truckNumber":"KA01AB1234","make":"Tata","model":"Prima",
	"year":"2020","financed":true,"loanAmount":250000,"images":["a.jpg","b.jpg"],
	"chassisNumber":"CH1","engineNumber":"EN1","description":"tipper","createdAt":"2024-01-01T00:00:00Z"}`

var legacyVehicle = Vehicle{
	ID:             "v1",
	AddedBy:        "u1",
	RegistrationNo: "KA01AB1234",
	Make:           "Tata",
	Model:          "Prima",
	Year:           2020,
	IsFinanced:     true,
	FinanceAmount:  250000,
	ImgURL:         []string{"a.jpg", "b.jpg"},
	ChassisNo:      "CH1",
	EngineNo:       "EN1",
	Desc:           "tipper",
	CreatedAt:      "2024-01-01T00:00:00Z",
}

func TestVehicles(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{
			name:     "single vehicle",
			input:    fleetVehicle,
			expected: legacyVehicle,
		},
		{
			name:     "vehicle list",
			input:    `[` + fleetVehicle + `]`,
			expected: []Vehicle{legacyVehicle},
		},
		{
			name:  "data wrapper keeps its other keys",
			input: `{"success":true,"data":[` + fleetVehicle + `]}`,
			expected: map[string]any{
				"success": true,
				"data":    []Vehicle{legacyVehicle},
			},
		},
		{
			name:  "data wrapper around a single vehicle",
			input: `{"data":` + fleetVehicle + `}`,
			expected: map[string]any{
				"data": legacyVehicle,
			},
		},
		{
			name:     "data wrapper around null",
			input:    `{"data":null}`,
			expected: map[string]any{"data": nil},
		},
		{
			name:     "empty list",
			input:    `[]`,
			expected: []Vehicle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vehicles(decode(t, tt.input))

			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Vehicles() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVehicles_UnwrapsOneLevelOnly(t *testing.T) {
	got := Vehicles(decode(t, `{"data":{"data":[`+fleetVehicle+`]}}`))

	wrapped, ok := got.(map[string]any)
	require.True(t, ok)

	inner, ok := wrapped["data"].(Vehicle)
	require.True(t, ok, "nested wrapper is treated as a vehicle record")
	assert.Equal(t, Vehicle{ImgURL: []string{}}, inner)
}

func TestVehicles_FalsyInputYieldsNil(t *testing.T) {
	for _, input := range []any{nil, "", false, json.Number("0")} {
		assert.Nil(t, Vehicles(input))
	}
}

func TestVehicles_LegacyInputIsStable(t *testing.T) {
	legacy := roundTrip(t, legacyVehicle)

	assert.Equal(t, legacyVehicle, Vehicles(legacy))
}

func TestVehicle_ImagesDefaultToEmptyList(t *testing.T) {
	got := Vehicles(decode(t, `{"id":"v2","truckNumber":"MH12"}`))

	data, err := json.Marshal(got)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, []any{}, body["imgURL"])
	assert.Equal(t, "MH12", body["registrationNo"])
	assert.Equal(t, false, body["isFinanced"])
}
