package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/meenmo/qfin/bond"
	"github.com/meenmo/qfin/cashflow"
	"github.com/meenmo/qfin/curve"
)

type bondInput struct {
	TaskID    string  `json:"task_id,omitempty"`
	Notional  float64 `json:"notional"`
	Coupon    float64 `json:"coupon"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Frequency float64 `json:"frequency"`

	// FlatRate builds a flat discount curve; SpotRates a linearly
	// interpolated one. Exactly one of the two must be set.
	FlatRate  *float64       `json:"flat_rate,omitempty"`
	SpotRates []spotRateJSON `json:"spot_rates,omitempty"`

	// NPV is the purchase price for yield and duration; 0 means notional.
	NPV float64 `json:"npv,omitempty"`

	// ForwardTime prices the bond forward to this time (0 = today).
	ForwardTime float64 `json:"forward_time,omitempty"`
}

type spotRateJSON struct {
	T    float64 `json:"t"`
	Rate float64 `json:"rate"`
}

type cashflowJSON struct {
	T     float64 `json:"t"`
	Value float64 `json:"value"`
}

type bondOutput struct {
	TaskID     string         `json:"task_id,omitempty"`
	Cashflows  []cashflowJSON `json:"cashflows,omitempty"`
	DirtyPrice float64        `json:"dirty_price"`
	Yield      float64        `json:"yield"`
	Duration   float64        `json:"duration"`
	Error      string         `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: bondcalc -input <path>")
		fmt.Fprintln(os.Stderr, "Compute bond cashflows, dirty price, yield and duration from JSON input.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: bondcalc -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]bondOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, bondOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in bondInput) (*bondOutput, error) {
	b, err := bond.New(in.Notional, in.Coupon, in.Start, in.End, bond.Frequency(in.Frequency))
	if err != nil {
		return nil, err
	}

	dc, err := buildCurve(in)
	if err != nil {
		return nil, err
	}

	npv := in.NPV
	if npv == 0 {
		npv = in.Notional
	}

	yield, err := b.YieldToMaturity(npv)
	if err != nil {
		return nil, err
	}
	duration, err := b.Duration(npv)
	if err != nil {
		return nil, err
	}

	out := &bondOutput{
		TaskID:     in.TaskID,
		DirtyPrice: roundMoney(b.ForwardDirtyPrice(dc, in.ForwardTime)),
		Yield:      yield,
		Duration:   duration,
	}
	for _, cf := range b.Cashflows() {
		f := cf.(cashflow.Fixed)
		out.Cashflows = append(out.Cashflows, cashflowJSON{T: f.T, Value: roundMoney(f.Value)})
	}
	return out, nil
}

func buildCurve(in bondInput) (curve.DiscountCurve, error) {
	if in.FlatRate != nil && len(in.SpotRates) > 0 {
		return nil, fmt.Errorf("flat_rate and spot_rates are mutually exclusive")
	}
	if in.FlatRate != nil {
		return curve.FlatDiscount(*in.FlatRate), nil
	}
	if len(in.SpotRates) > 0 {
		knots := make([]curve.SpotRate, 0, len(in.SpotRates))
		for _, sr := range in.SpotRates {
			knots = append(knots, curve.SpotRate{T: sr.T, Rate: sr.Rate})
		}
		spot, err := curve.NewLinearSpot(knots)
		if err != nil {
			return nil, err
		}
		return curve.SpotToDiscount(spot), nil
	}
	return nil, fmt.Errorf("either flat_rate or spot_rates is required")
}

// roundMoney rounds cash amounts to 10 decimal places for stable JSON output.
func roundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(10).Float64()
	return f
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]bondInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []bondInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input bondInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []bondInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(bondOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
