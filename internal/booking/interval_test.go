package booking

import (
    "errors"
    "testing"
)

func TestParseClock(t *testing.T) {
    cases := []struct {
        in      string
        want    int
        wantErr bool
    }{
        {"00:00", 0, false},
        {"06:00", 360, false},
        {"19:30", 1170, false},
        {"23:59", 1439, false},
        {"24:00", 0, true},
        {"12:60", 0, true},
        {"-1:00", 0, true},
        {"12", 0, true},
        {"ab:cd", 0, true},
        {"", 0, true},
    }
    for _, tc := range cases {
        got, err := ParseClock(tc.in)
        if tc.wantErr {
            if !errors.Is(err, ErrInvalidTime) {
                t.Errorf("ParseClock(%q): want ErrInvalidTime, got %v", tc.in, err)
            }
            continue
        }
        if err != nil {
            t.Errorf("ParseClock(%q): unexpected error %v", tc.in, err)
            continue
        }
        if got != tc.want {
            t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
        }
    }
}

func TestNewInterval(t *testing.T) {
    iv, err := NewInterval("10:00", 2)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if iv.StartMinute != 600 || iv.EndMinute != 720 {
        t.Errorf("got %+v, want [600,720)", iv)
    }
    if iv.Hours() != 2 {
        t.Errorf("Hours() = %d, want 2", iv.Hours())
    }
    if iv.StartClock() != "10:00" {
        t.Errorf("StartClock() = %q, want 10:00", iv.StartClock())
    }

    if _, err := NewInterval("10:00", 0); !errors.Is(err, ErrInvalidDuration) {
        t.Errorf("zero duration: want ErrInvalidDuration, got %v", err)
    }
    if _, err := NewInterval("10:00", -3); !errors.Is(err, ErrInvalidDuration) {
        t.Errorf("negative duration: want ErrInvalidDuration, got %v", err)
    }
    if _, err := NewInterval("25:00", 1); !errors.Is(err, ErrInvalidTime) {
        t.Errorf("bad time: want ErrInvalidTime, got %v", err)
    }
}

func TestOverlaps(t *testing.T) {
    cases := []struct {
        name string
        a, b Interval
        want bool
    }{
        {"identical", Interval{600, 720}, Interval{600, 720}, true},
        {"contained", Interval{600, 840}, Interval{660, 720}, true},
        {"partial", Interval{600, 720}, Interval{660, 780}, true},
        {"adjacent after", Interval{600, 720}, Interval{720, 780}, false},
        {"adjacent before", Interval{600, 720}, Interval{540, 600}, false},
        {"disjoint", Interval{600, 720}, Interval{900, 960}, false},
        {"one minute shared", Interval{600, 720}, Interval{719, 780}, true},
    }
    for _, tc := range cases {
        if got := tc.a.Overlaps(tc.b); got != tc.want {
            t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
        }
        // The predicate must not care which interval is the existing one.
        if tc.a.Overlaps(tc.b) != tc.b.Overlaps(tc.a) {
            t.Errorf("%s: Overlaps is not symmetric", tc.name)
        }
    }
}

func TestOperatingHoursContains(t *testing.T) {
    hours := OperatingHours{OpenMinute: 360, CloseMinute: 1380} // 06:00-23:00

    cases := []struct {
        name string
        iv   Interval
        want bool
    }{
        {"inside", Interval{600, 720}, true},
        {"exact bounds", Interval{360, 1380}, true},
        {"starts before open", Interval{300, 420}, false},
        {"ends after close", Interval{1320, 1440}, false},
        {"ends exactly at close", Interval{1320, 1380}, true},
    }
    for _, tc := range cases {
        if got := hours.Contains(tc.iv); got != tc.want {
            t.Errorf("%s: Contains = %v, want %v", tc.name, got, tc.want)
        }
    }
}
