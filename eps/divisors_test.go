package eps

import (
	"math/big"
	"testing"
)

func TestValidateDivisors(t *testing.T) {
	if err := ValidateDivisors([]float64{2.0, 1.1, 1.00001}); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}
	if err := ValidateDivisors([]float64{}); err != nil {
		t.Errorf("empty schedule rejected: %v", err)
	}
	if err := ValidateDivisors([]float64{2.0, 1.0}); err == nil {
		t.Error("schedule containing 1.0 accepted; it would never converge")
	}
	if err := ValidateDivisors([]float32{0.5}); err == nil {
		t.Error("schedule containing 0.5 accepted; it grows instead of shrinking")
	}
}

func TestValidateDivisorsF16CatchesCollapse(t *testing.T) {
	// 1.0001 is a fine float64 divisor but binary16 has no value between
	// 1.0 and 1.0 + 2^-10, so the conversion collapses it to exactly 1.
	collapsed := NewFloat16(1.0001)
	if err := ValidateDivisorsF16([]Float16{collapsed}); err == nil {
		t.Errorf("divisor 1.0001 (binary16 bits %#04x) accepted; it rounds to 1.0", collapsed.Bits())
	}
	if err := ValidateDivisorsF16([]Float16{NewFloat16(2.0), NewFloat16(1.0625)}); err != nil {
		t.Errorf("valid binary16 schedule rejected: %v", err)
	}
}

func TestValidateDivisorsBF16CatchesCollapse(t *testing.T) {
	collapsed := NewBFloat16(1.001)
	if err := ValidateDivisorsBF16([]BFloat16{collapsed}); err == nil {
		t.Errorf("divisor 1.001 (bfloat16 bits %#04x) accepted; it rounds to 1.0", collapsed.Bits())
	}
	if err := ValidateDivisorsBF16([]BFloat16{NewBFloat16(2.0), NewBFloat16(1.0625)}); err != nil {
		t.Errorf("valid bfloat16 schedule rejected: %v", err)
	}
}

func TestValidateDivisorsBig(t *testing.T) {
	ok := []*big.Float{big.NewFloat(2.0), big.NewFloat(1.00001)}
	if err := ValidateDivisorsBig(ok); err != nil {
		t.Errorf("valid schedule rejected: %v", err)
	}
	bad := []*big.Float{big.NewFloat(2.0), big.NewFloat(1.0)}
	if err := ValidateDivisorsBig(bad); err == nil {
		t.Error("schedule containing 1.0 accepted; it would never converge")
	}
}
