package util

import (
    "testing"
    "time"
)

func TestParseDateISO(t *testing.T) {
    got, ok := ParseDate("2023-04-17")
    if !ok {
        t.Fatalf("expected ok")
    }
    want := time.Date(2023, 4, 17, 0, 0, 0, 0, time.UTC)
    if !got.Equal(want) {
        t.Fatalf("unexpected date %v", got)
    }
}

func TestParseDateShortYear(t *testing.T) {
    got, ok := ParseDate("4/7/23")
    if !ok {
        t.Fatalf("expected ok")
    }
    want := time.Date(2023, 4, 7, 0, 0, 0, 0, time.UTC)
    if !got.Equal(want) {
        t.Fatalf("unexpected date %v", got)
    }
}

func TestParseDateInvalid(t *testing.T) {
    if _, ok := ParseDate("not-a-date"); ok {
        t.Fatalf("expected failure")
    }
    if _, ok := ParseDate(""); ok {
        t.Fatalf("expected failure on empty")
    }
}

func TestAbsDuration(t *testing.T) {
    a := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)
    b := time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC)
    if AbsDuration(a, b) != AbsDuration(b, a) {
        t.Fatalf("expected symmetric distance")
    }
    if AbsDuration(a, b) != 48*time.Hour {
        t.Fatalf("unexpected distance %v", AbsDuration(a, b))
    }
}
