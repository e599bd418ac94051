package feestatement

import "testing"

func TestParseTrailingDashMeansSettled(t *testing.T) {
	text := `FEE STATEMENT
Name: EASTON MICHURA OCHIENG
01/09/2024 TUITION 54000 54000
15/09/2024 PAYMENT RECEIVED 54000 -`
	s := Parse(text)
	if !s.Found || !s.Settled || s.Balance != 0 {
		t.Fatalf("statement = %+v, want settled zero balance", s)
	}
}

func TestParseFinalLedgerBalance(t *testing.T) {
	text := `FEE STATEMENT
01/09/2024 TUITION CHARGE SEMESTER ONE 54000 54000
15/10/2024 PARTIAL PAYMENT RECEIVED 30000 24000`
	s := Parse(text)
	if !s.Found || s.Balance != 24000 {
		t.Fatalf("statement = %+v, want balance 24000", s)
	}
	if s.Settled {
		t.Fatal("nonzero balance must not be settled")
	}
}

func TestParseLabeledBalance(t *testing.T) {
	s := Parse("Balance: 12,500.50")
	if !s.Found || s.Balance != 12500.50 {
		t.Fatalf("statement = %+v", s)
	}
}

func TestParseLabeledDash(t *testing.T) {
	s := Parse("Balance: -")
	if !s.Found || !s.Settled {
		t.Fatalf("statement = %+v", s)
	}
}

func TestParseNoBalance(t *testing.T) {
	s := Parse("just a letter about nothing")
	if s.Found {
		t.Fatalf("statement = %+v, want not found", s)
	}
}
