// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchrun

import (
	"errors"
	"fmt"
	"testing"
)

func TestRepeatCount(t *testing.T) {
	c := Candidate{Name: "ok", Fn: func() error { return nil }}

	for _, count := range []int{0, -1} {
		_, err := Repeat(c, count, PolicyRecord)
		if !errors.Is(err, ErrInvalidReplications) {
			t.Errorf("Repeat(count=%d) = %v, want ErrInvalidReplications", count, err)
		}
	}

	set, err := Repeat(c, 5, PolicyRecord)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Measurements) != 5 {
		t.Errorf("len(Measurements) = %d, want 5", len(set.Measurements))
	}
	if set.Completed() != 5 || set.Failures() != 0 {
		t.Errorf("Completed, Failures = %d, %d, want 5, 0", set.Completed(), set.Failures())
	}
	for i, m := range set.Measurements {
		if m.Replication != i {
			t.Errorf("Measurements[%d].Replication = %d", i, m.Replication)
		}
		if m.Wall < 0 {
			t.Errorf("Measurements[%d].Wall = %v, want >= 0", i, m.Wall)
		}
	}
}

func TestRepeatRecordPolicy(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	c := Candidate{Name: "flaky", Fn: func() error {
		calls++
		if calls%2 == 0 {
			return boom
		}
		return nil
	}}

	set, err := Repeat(c, 6, PolicyRecord)
	if err != nil {
		t.Fatalf("record policy returned error: %v", err)
	}
	if len(set.Measurements) != 6 {
		t.Errorf("len(Measurements) = %d, want 6", len(set.Measurements))
	}
	if set.Completed() != 3 || set.Failures() != 3 {
		t.Errorf("Completed, Failures = %d, %d, want 3, 3", set.Completed(), set.Failures())
	}
	for i, m := range set.Measurements {
		wantErr := i%2 == 1
		if (m.Err != nil) != wantErr {
			t.Errorf("Measurements[%d].Err = %v, want error: %v", i, m.Err, wantErr)
		}
	}
	if got := set.WallSeconds(); len(got) != 3 {
		t.Errorf("len(WallSeconds) = %d, want 3 (successes only)", len(got))
	}
}

func TestRepeatAbortPolicy(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	c := Candidate{Name: "dies", Fn: func() error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	}}

	set, err := Repeat(c, 10, PolicyAbort)
	var cerr *CandidateError
	if !errors.As(err, &cerr) {
		t.Fatalf("abort policy error = %v, want *CandidateError", err)
	}
	if cerr.Candidate != "dies" || cerr.Replication != 2 {
		t.Errorf("CandidateError = %+v, want candidate %q replication 2", cerr, "dies")
	}
	if !errors.Is(err, boom) {
		t.Errorf("CandidateError does not wrap the cause: %v", err)
	}
	if calls != 3 {
		t.Errorf("computation ran %d times, want 3 (no retries)", calls)
	}
	// Partial results up to and including the failure are attached.
	if len(set.Measurements) != 3 {
		t.Errorf("len(Measurements) = %d, want 3", len(set.Measurements))
	}
	if set.Completed() != 2 || set.Failures() != 1 {
		t.Errorf("Completed, Failures = %d, %d, want 2, 1", set.Completed(), set.Failures())
	}
}

func TestFailurePolicyString(t *testing.T) {
	for _, test := range []struct {
		in   string
		want FailurePolicy
	}{
		{"record", PolicyRecord},
		{"abort", PolicyAbort},
	} {
		got, err := ParseFailurePolicy(test.in)
		if err != nil || got != test.want {
			t.Errorf("ParseFailurePolicy(%q) = %v, %v", test.in, got, err)
		}
		if got.String() != test.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), test.in)
		}
	}
	if _, err := ParseFailurePolicy("retry"); err == nil {
		t.Error("ParseFailurePolicy(\"retry\") succeeded, want error")
	}
}

func ExampleRepeat() {
	c := Candidate{Name: "noop", Fn: func() error { return nil }}
	set, err := Repeat(c, 3, PolicyRecord)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(set.Candidate, len(set.Measurements), set.Failures())
	// Output: noop 3 0
}
