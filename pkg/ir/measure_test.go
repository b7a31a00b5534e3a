package ir

import "testing"

func TestMeasurement_String(t *testing.T) {
	tests := []struct {
		name string
		m    Measurement
		want string
	}{
		{name: "unitless", m: Number(42), want: "42"},
		{name: "fractional", m: Number(1.5), want: "1.5"},
		{name: "em", m: Em(1.2), want: "1.2em"},
		{name: "ex", m: Ex(2), want: "2ex"},
		{name: "px", m: Px(100), want: "100px"},
		{name: "in", m: In(1), want: "1in"},
		{name: "cm", m: Cm(2.54), want: "2.54cm"},
		{name: "mm", m: Mm(10), want: "10mm"},
		{name: "pt", m: Pt(12), want: "12pt"},
		{name: "pc", m: Pc(1), want: "1pc"},
		{name: "percent", m: Percent(50), want: "50%"},
		{name: "zero value", m: Measurement{}, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestViewBox_String(t *testing.T) {
	v := ViewBox{MinX: 0, MinY: 0, Width: 400, Height: 300}
	if got, want := v.String(), "0 0 400 300"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	v = ViewBox{MinX: -10, MinY: 2.5, Width: 20, Height: 5}
	if got, want := v.String(), "-10 2.5 20 5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTextAnchor_String(t *testing.T) {
	tests := []struct {
		a    TextAnchor
		want string
	}{
		{AnchorStart, "start"},
		{AnchorMiddle, "middle"},
		{AnchorEnd, "end"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("TextAnchor(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
