package config

import "testing"

func TestValidateRejectsBadDimensions(t *testing.T) {
	o := Default()
	o.Width = 0
	if err := o.Validate(); err == nil {
		t.Errorf("expected error for zero width")
	}
}

func TestValidateClampsThreadsToHeight(t *testing.T) {
	o := Default()
	o.Height = 5
	o.Threads = 50
	if err := o.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Threads != 5 {
		t.Errorf("expected threads clamped to height 5, got %d", o.Threads)
	}
}

func TestValidateClampsThreadsToAtLeastOne(t *testing.T) {
	o := Default()
	o.Threads = 0
	if err := o.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Threads != 1 {
		t.Errorf("expected threads clamped to 1, got %d", o.Threads)
	}
}

func TestValidateRejectsUnknownProjection(t *testing.T) {
	o := Default()
	o.Projection = 'x'
	if err := o.Validate(); err == nil {
		t.Errorf("expected error for unknown projection letter")
	}
}

func TestWrinklyWeights(t *testing.T) {
	o := Default()
	if wAlt, pAlt := o.WrinklyWeights(); wAlt != 0.45 || pAlt != 1.0 {
		t.Errorf("expected default weights 0.45/1.0, got %v/%v", wAlt, pAlt)
	}
	o.Wrinkly = true
	if wAlt, pAlt := o.WrinklyWeights(); wAlt != 0.225 || pAlt != 0.75 {
		t.Errorf("expected wrinkly weights 0.225/0.75, got %v/%v", wAlt, pAlt)
	}
}
