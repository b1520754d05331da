package adapter

const dataKey = "data"

// Vehicle is the legacy vehicle record.
type Vehicle struct {
	ID             string   `json:"_id"`
	AddedBy        string   `json:"addedBy"`
	RegistrationNo string   `json:"registrationNo"`
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	Year           int64    `json:"year,omitempty"`
	IsFinanced     bool     `json:"isFinanced"`
	FinanceAmount  float64  `json:"financeAmount"`
	ImgURL         []string `json:"imgURL"`
	ChassisNo      string   `json:"chassisNo"`
	EngineNo       string   `json:"engineNo"`
	Desc           string   `json:"desc"`
	CreatedAt      string   `json:"createdAt,omitempty"`
}

// Vehicles adapts a vehicle list, a single vehicle, or a {data: ...} wrapper
// around either. A wrapper keeps its other keys and is unwrapped one level
// only. Falsy input yields nil.
func Vehicles(raw any) any {
	if m, ok := raw.(map[string]any); ok {
		if data, ok := m[dataKey]; ok {
			wrapped := make(map[string]any, len(m))
			for k, v := range m {
				wrapped[k] = v
			}
			wrapped[dataKey] = vehicles(data)
			return wrapped
		}
	}
	return vehicles(raw)
}

func vehicles(raw any) any {
	if !truthy(raw) {
		return nil
	}

	switch v := raw.(type) {
	case []any:
		list := make([]Vehicle, 0, len(v))
		for _, item := range v {
			list = append(list, vehicle(asRecord(item)))
		}
		return list
	case map[string]any:
		return vehicle(v)
	}
	return raw
}

func vehicle(rec map[string]any) Vehicle {
	return Vehicle{
		ID:             idKeys.text(rec),
		AddedBy:        addedByKeys.text(rec),
		RegistrationNo: registrationKeys.text(rec),
		Make:           makeKeys.text(rec),
		Model:          modelKeys.text(rec),
		Year:           toDecimal(yearKeys.value(rec)).IntPart(),
		IsFinanced:     financedKeys.flag(rec),
		FinanceAmount:  financeAmountKeys.number(rec),
		ImgURL:         images(imageKeys.value(rec)),
		ChassisNo:      chassisKeys.text(rec),
		EngineNo:       engineKeys.text(rec),
		Desc:           descKeys.text(rec),
		CreatedAt:      createdAtKeys.text(rec),
	}
}

func images(v any) []string {
	out := []string{}
	switch t := v.(type) {
	case string:
		out = append(out, t)
	case []string:
		out = append(out, t...)
	case []any:
		for _, item := range t {
			if s := toText(item); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
