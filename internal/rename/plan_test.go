package rename

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/jluethi/microf/internal/convention"
	"github.com/jluethi/microf/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.NewWithWriter(io.Discard)
}

func TestPlan(t *testing.T) {
	paths := []string{
		"/data/plate1/E_1_B - 03(fld 4 wv Blue-FITC).tif",
		"/data/plate1/notes.txt",
		"/data/plate1/20180328_TestAbs_G - 8(fld 4 wv Red - Cy5).tif",
	}

	ops, rep, err := Plan(paths, convention.IC6000, testLogger())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	if rep.Examined != 3 || rep.Planned != 2 || rep.Ignored != 1 {
		t.Errorf("report = %+v, want {3 2 1}", rep)
	}
	if rep.Planned+rep.Ignored != rep.Examined {
		t.Errorf("report does not add up: %+v", rep)
	}

	expected := []Operation{
		{
			Source: "/data/plate1/E_1_B - 03(fld 4 wv Blue-FITC).tif",
			Dest:   "/data/plate1/E1_B03_T0001F004L01A01Z01C02.tif",
		},
		{
			Source: "/data/plate1/20180328_TestAbs_G - 8(fld 4 wv Red - Cy5).tif",
			Dest:   "/data/plate1/20180328TestAbs_G08_T0001F004L01A01Z01C04.tif",
		},
	}
	if !reflect.DeepEqual(ops, expected) {
		t.Errorf("ops = %v, want %v", ops, expected)
	}
}

func TestPlanIdempotent(t *testing.T) {
	paths := []string{
		"/data/E_1_B - 03(fld 4 wv Blue-FITC).tif",
		"/data/skip.jpg",
	}

	first, rep1, err := Plan(paths, convention.IC6000, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	second, rep2, err := Plan(paths, convention.IC6000, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) || rep1 != rep2 {
		t.Errorf("planning is not idempotent: %v / %v", first, second)
	}
}

func TestPlanUnknownChannelAborts(t *testing.T) {
	paths := []string{
		"/data/E_1_B - 03(fld 4 wv Blue-FITC).tif",
		"/data/E_1_B - 04(fld 4 wv Magenta).tif",
	}

	ops, _, err := Plan(paths, convention.IC6000, testLogger())
	if err == nil {
		t.Fatal("expected error for unknown channel label")
	}
	var chErr *convention.UnknownChannelError
	if !errors.As(err, &chErr) {
		t.Fatalf("expected UnknownChannelError, got %v", err)
	}
	if ops != nil {
		t.Errorf("partial plan returned: %v", ops)
	}
}

func TestPlanEmptyInput(t *testing.T) {
	ops, rep, err := Plan(nil, convention.IC6000, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 0 || rep != (Report{}) {
		t.Errorf("ops = %v, report = %+v, want empty", ops, rep)
	}
}
