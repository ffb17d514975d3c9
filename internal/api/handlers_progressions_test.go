package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chordlab/internal/theory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) ChordProgressions(key, scaleType string, capo int) (*theory.ProgressionSet, error) {
	args := m.Called(key, scaleType, capo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*theory.ProgressionSet), args.Error(1)
}

func (m *MockEngine) MelodyForProgression(key, scaleType string, chordNames []string) ([]theory.MelodyNote, error) {
	args := m.Called(key, scaleType, chordNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]theory.MelodyNote), args.Error(1)
}

func TestHandleProgressions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		mockE := new(MockEngine)
		srv := NewServer(mockE)

		mockE.On("ChordProgressions", "C", "major", 0).
			Return(&theory.ProgressionSet{Key: "C"}, nil)

		req, _ := http.NewRequest("GET", "/api/progressions", nil)
		rr := httptest.NewRecorder()
		srv.HandleProgressions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockE.AssertExpectations(t)
	})

	t.Run("scale normalization and capo clamping", func(t *testing.T) {
		cases := []struct {
			query     string
			wantKey   string
			wantScale string
			wantCapo  int
		}{
			{"key=A&scale=MiNoR&capo=3", "A", "minor", 3},
			{"key=D&scale=dorian&capo=99", "D", "major", 11},
			{"key=E&scale=major&capo=-4", "E", "major", 0},
			{"key=bb&capo=abc", "bb", "major", 0},
		}
		for _, tc := range cases {
			t.Run(tc.query, func(t *testing.T) {
				mockE := new(MockEngine)
				srv := NewServer(mockE)

				mockE.On("ChordProgressions", tc.wantKey, tc.wantScale, tc.wantCapo).
					Return(&theory.ProgressionSet{Key: tc.wantKey}, nil)

				req, _ := http.NewRequest("GET", "/api/progressions?"+tc.query, nil)
				rr := httptest.NewRecorder()
				srv.HandleProgressions(rr, req)

				assert.Equal(t, http.StatusOK, rr.Code)
				mockE.AssertExpectations(t)
			})
		}
	})

	t.Run("engine error maps to 500", func(t *testing.T) {
		mockE := new(MockEngine)
		srv := NewServer(mockE)

		mockE.On("ChordProgressions", "H", "major", 0).
			Return(nil, errors.New(`unsupported note: "H"`))

		req, _ := http.NewRequest("GET", "/api/progressions?key=H", nil)
		rr := httptest.NewRecorder()
		srv.HandleProgressions(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "unsupported note")
	})

	t.Run("end to end with real engine", func(t *testing.T) {
		srv := NewServer(TheoryEngine{})
		req, _ := http.NewRequest("GET", "/api/progressions?key=c&capo=2", nil)
		rr := httptest.NewRecorder()
		srv.HandleProgressions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var set theory.ProgressionSet
		err := json.Unmarshal(rr.Body.Bytes(), &set)
		assert.NoError(t, err)
		assert.Equal(t, "C", set.Key)
		assert.Equal(t, "D", set.CapoKey)
		assert.Equal(t, []string{"D", "E", "F#", "G", "A", "B", "C#"}, set.Scale)
		assert.Len(t, set.Progressions, 5)
	})
}
