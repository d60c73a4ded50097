package calendardate

import (
	"encoding/json"
	"testing"
	"time"
)

type event struct {
	Name string       `json:"name"`
	On   CalendarDate `json:"on"`
}

func TestMarshalJSON(t *testing.T) {
	e := event{Name: "release", On: Parse("2024-7-4", WithLocation(time.UTC))}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"name":"release","on":"2024-07-04"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantISO    string
		wantHealed bool
		wantErr    bool
	}{
		{"Canonical", `{"on":"2024-07-04"}`, "2024-07-04", false, false},
		{"Padded on decode", `{"on":"2024-7-4"}`, "2024-07-04", false, false},
		{"Unrecognized text heals", `{"on":"someday"}`, "", true, false},
		{"Null leaves zero value", `{"on":null}`, "", false, false},
		{"Number is an error", `{"on":20240704}`, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e event
			err := json.Unmarshal([]byte(tt.data), &e)

			if (err != nil) != tt.wantErr {
				t.Fatalf("json.Unmarshal(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if e.On.WasHealed() != tt.wantHealed {
				t.Errorf("WasHealed() = %v, want %v", e.On.WasHealed(), tt.wantHealed)
			}
			if !tt.wantHealed && e.On.ISOString() != tt.wantISO {
				t.Errorf("ISOString() = %q, want %q", e.On.ISOString(), tt.wantISO)
			}
		})
	}
}

func TestUnmarshalText_KeepsLocation(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	d := Parse("2000-01-01", WithLocation(msk))

	if err := d.UnmarshalText([]byte("2024-02-29")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Location() != msk {
		t.Errorf("Location() = %v, want %v", d.Location(), msk)
	}
	if d.ISOString() != "2024-02-29" {
		t.Errorf("ISOString() = %q, want 2024-02-29", d.ISOString())
	}
}

func TestMarshalText_Invalid(t *testing.T) {
	text, err := FromTime(time.Time{}).MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if len(text) != 0 {
		t.Errorf("MarshalText() = %q, want empty", text)
	}
}
