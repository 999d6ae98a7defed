package core

import (
	"testing"
	"time"
)

func TestDelayGateZeroValuePasses(t *testing.T) {
	var dg DelayGate
	if dg.Waiting() {
		t.Fatal("zero-value gate must not be waiting")
	}
}

func TestDelayGateBlocksUntilDeadline(t *testing.T) {
	var dg DelayGate
	dg.Trigger(30 * time.Millisecond)
	if !dg.Waiting() {
		t.Fatal("gate should be waiting right after trigger")
	}
	time.Sleep(60 * time.Millisecond)
	if dg.Waiting() {
		t.Fatal("gate should have opened after the deadline")
	}
}

func TestDelayGateTriggersAccumulate(t *testing.T) {
	var dg DelayGate
	dg.Trigger(40 * time.Millisecond)
	dg.Trigger(40 * time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	if !dg.Waiting() {
		t.Fatal("second trigger should have extended the deadline")
	}
	time.Sleep(40 * time.Millisecond)
	if dg.Waiting() {
		t.Fatal("gate should have opened after the extended deadline")
	}
}
