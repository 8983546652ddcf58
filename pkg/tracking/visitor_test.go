package tracking_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatrack/pkg/fingerprint"
	"github.com/dmitrymomot/gatrack/pkg/tracking"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(at time.Time) tracking.Option {
	return tracking.WithClock(func() time.Time { return at })
}

func TestNewVisitor(t *testing.T) {
	t.Parallel()

	v := tracking.NewVisitor(fixedClock(t0))

	assert.Equal(t, t0, v.FirstVisitTime())
	assert.Equal(t, t0, v.PreviousVisitTime())
	assert.Equal(t, t0, v.CurrentVisitTime())
	assert.Equal(t, 1, v.VisitCount())
	assert.False(t, v.HasUniqueID())
	assert.Empty(t, v.IPAddress)
	assert.Empty(t, v.Locale)
}

func TestVisitorUniqueID(t *testing.T) {
	t.Parallel()

	t.Run("generated once on first read", func(t *testing.T) {
		t.Parallel()

		calls := 0
		v := tracking.NewVisitor(tracking.WithRandom(func() uint32 {
			calls++
			return 0x12345678
		}))

		first := v.UniqueID()
		second := v.UniqueID()

		assert.Equal(t, 1, calls)
		assert.Equal(t, first, second)
		assert.True(t, v.HasUniqueID())
		assert.LessOrEqual(t, first, uint32(tracking.MaxUniqueID))
	})

	t.Run("mixes random number with device hash", func(t *testing.T) {
		t.Parallel()

		var hashed string
		v := tracking.NewVisitor(
			tracking.WithRandom(func() uint32 { return 0xffffffff }),
			tracking.WithHasher(func(s string) uint32 {
				hashed = s
				return 0x0000ffff
			}),
		)
		v.UserAgent = "Mozilla/5.0"
		v.ScreenResolution = "1920x1080"
		v.ScreenColourDepth = "24"

		assert.Equal(t, uint32(0x7fff0000), v.UniqueID())
		assert.Equal(t, "Mozilla/5.01920x108024", hashed)
	})

	t.Run("high bit is always cleared", func(t *testing.T) {
		t.Parallel()

		v := tracking.NewVisitor(
			tracking.WithRandom(func() uint32 { return 0xffffffff }),
			tracking.WithHasher(func(string) uint32 { return 0 }),
		)
		assert.Equal(t, uint32(tracking.MaxUniqueID), v.UniqueID())
	})

	t.Run("default sources stay in range", func(t *testing.T) {
		t.Parallel()

		for range 100 {
			v := tracking.NewVisitor()
			v.UserAgent = "Mozilla/5.0 (X11; Linux x86_64)"
			assert.LessOrEqual(t, v.UniqueID(), uint32(tracking.MaxUniqueID))
		}
	})

	t.Run("uses the utm hash by default", func(t *testing.T) {
		t.Parallel()

		v := tracking.NewVisitor(tracking.WithRandom(func() uint32 { return 0 }))
		v.UserAgent = "ua"
		v.ScreenResolution = "800x600"
		v.ScreenColourDepth = "16"

		expected := fingerprint.Device("ua", "800x600", "16") & tracking.MaxUniqueID
		assert.Equal(t, expected, v.UniqueID())
	})

	t.Run("generate does not store", func(t *testing.T) {
		t.Parallel()

		v := tracking.NewVisitor(tracking.WithRandom(func() uint32 { return 42 }))
		_ = v.GenerateUniqueID()
		assert.False(t, v.HasUniqueID())
	})

	t.Run("zero visitor still generates", func(t *testing.T) {
		t.Parallel()

		var v tracking.Visitor
		assert.LessOrEqual(t, v.UniqueID(), uint32(tracking.MaxUniqueID))
		assert.True(t, v.HasUniqueID())
	})
}

func TestVisitorSetUniqueID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		id      int64
		wantErr bool
	}{
		{"negative", -1, true},
		{"above 31 bits", 0x80000000, true},
		{"max", 0x7fffffff, false},
		{"zero", 0, false},
		{"typical", 1234567, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := tracking.NewVisitor(tracking.WithRandom(func() uint32 { return 7 }))
			err := v.SetUniqueID(tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tracking.ErrValidation)

				var verr *tracking.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "unique_id", verr.Field)
				assert.False(t, v.HasUniqueID(), "rejected value must not be stored")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint32(tt.id), v.UniqueID())
		})
	}

	t.Run("rejection keeps previous value", func(t *testing.T) {
		t.Parallel()

		v := tracking.NewVisitor()
		require.NoError(t, v.SetUniqueID(99))
		require.Error(t, v.SetUniqueID(-5))
		assert.Equal(t, uint32(99), v.UniqueID())
	})
}

func TestVisitorAddSession(t *testing.T) {
	t.Parallel()

	t.Run("same start time is a no-op", func(t *testing.T) {
		t.Parallel()

		v := tracking.NewVisitor(fixedClock(t0))
		s := tracking.NewSession(fixedClock(t0))

		v.AddSession(s)
		v.AddSession(s)

		assert.Equal(t, 1, v.VisitCount())
		assert.Equal(t, t0, v.CurrentVisitTime())
		assert.Equal(t, t0, v.PreviousVisitTime())
	})

	t.Run("new start time begins a visit", func(t *testing.T) {
		t.Parallel()

		t1 := t0.Add(2 * time.Hour)
		v := tracking.NewVisitor(fixedClock(t0))
		s := tracking.NewSession(fixedClock(t1))

		v.AddSession(s)

		assert.Equal(t, t0, v.FirstVisitTime())
		assert.Equal(t, t0, v.PreviousVisitTime())
		assert.Equal(t, t1, v.CurrentVisitTime())
		assert.Equal(t, 2, v.VisitCount())

		// folding the same session again changes nothing
		v.AddSession(s)
		assert.Equal(t, 2, v.VisitCount())
	})

	t.Run("equal instants in different zones are the same visit", func(t *testing.T) {
		t.Parallel()

		v := tracking.NewVisitor(fixedClock(t0))
		s := tracking.NewSession(fixedClock(t0.In(time.FixedZone("UTC+3", 3*60*60))))

		v.AddSession(s)
		assert.Equal(t, 1, v.VisitCount())
	})

	t.Run("session is not modified", func(t *testing.T) {
		t.Parallel()

		v := tracking.NewVisitor(fixedClock(t0))
		s := tracking.NewSession(fixedClock(t0.Add(time.Minute)))
		s.IncrementTrackCount()

		v.AddSession(s)

		assert.Equal(t, 1, s.TrackCount())
		assert.Equal(t, t0.Add(time.Minute), s.StartTime())
	})

	t.Run("nil session is ignored", func(t *testing.T) {
		t.Parallel()

		v := tracking.NewVisitor(fixedClock(t0))
		v.AddSession(nil)
		assert.Equal(t, 1, v.VisitCount())
	})
}
