package evm

import (
	"testing"

	"github.com/shopspring/decimal"
)

func figures(pv, ev, ac int64) Figures {
	return Figures{
		PV: decimal.NewFromInt(pv),
		EV: decimal.NewFromInt(ev),
		AC: decimal.NewFromInt(ac),
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name                 string
		in                   Figures
		wantCV, wantSV       string
		wantCPI, wantSPI     string
		costDefined          bool
		scheduleDefined      bool
	}{
		{
			name:   "reference case",
			in:     figures(100, 50, 25),
			wantCV: "25", wantSV: "-50",
			wantCPI: "2", wantSPI: "0.5",
			costDefined: true, scheduleDefined: true,
		},
		{
			name:   "not started reports zero indices",
			in:     figures(0, 0, 0),
			wantCV: "0", wantSV: "0",
			wantCPI: "0", wantSPI: "0",
			costDefined: false, scheduleDefined: false,
		},
		{
			name:   "no actuals yet",
			in:     figures(200, 150, 0),
			wantCV: "150", wantSV: "-50",
			wantCPI: "0", wantSPI: "0.75",
			costDefined: false, scheduleDefined: true,
		},
		{
			name:   "on budget",
			in:     figures(300, 300, 300),
			wantCV: "0", wantSV: "0",
			wantCPI: "1", wantSPI: "1",
			costDefined: true, scheduleDefined: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.in)

			if got.CV.String() != tt.wantCV {
				t.Errorf("CV: expected %s, got %s", tt.wantCV, got.CV)
			}
			if got.SV.String() != tt.wantSV {
				t.Errorf("SV: expected %s, got %s", tt.wantSV, got.SV)
			}
			if got.CPI.String() != tt.wantCPI {
				t.Errorf("CPI: expected %s, got %s", tt.wantCPI, got.CPI)
			}
			if got.SPI.String() != tt.wantSPI {
				t.Errorf("SPI: expected %s, got %s", tt.wantSPI, got.SPI)
			}
			if got.CostIndexDefined != tt.costDefined {
				t.Errorf("CostIndexDefined: expected %v", tt.costDefined)
			}
			if got.ScheduleIndexDefined != tt.scheduleDefined {
				t.Errorf("ScheduleIndexDefined: expected %v", tt.scheduleDefined)
			}
		})
	}
}

// TestZeroDenominatorIsNumericZero pins the fallback policy: indices
// with a zero denominator are exactly 0, never NaN or infinity, so
// equality comparisons downstream keep working.
func TestZeroDenominatorIsNumericZero(t *testing.T) {
	got := Compute(figures(0, 500, 0))

	if !got.CPI.Equal(decimal.Zero) {
		t.Errorf("expected CPI exactly 0, got %s", got.CPI)
	}
	if !got.SPI.Equal(decimal.Zero) {
		t.Errorf("expected SPI exactly 0, got %s", got.SPI)
	}
}

func TestIndicesRoundedToTwoDecimals(t *testing.T) {
	got := Compute(figures(3, 1, 3))

	// 1/3 rounds half-up at two decimals.
	if got.SPI.String() != "0.33" {
		t.Errorf("expected SPI 0.33, got %s", got.SPI)
	}
	if got.CPI.String() != "0.33" {
		t.Errorf("expected CPI 0.33, got %s", got.CPI)
	}
}
