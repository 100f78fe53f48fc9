package layout

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/odoo-tools/addons-path/internal/logging"
)

// mockDetector is a testify mock implementing Detector, for exercising
// the chain without touching the filesystem.
type mockDetector struct {
	mock.Mock
}

func (m *mockDetector) Name() string        { return m.Called().String(0) }
func (m *mockDetector) Description() string { return m.Called().String(0) }

func (m *mockDetector) Detect(root string) (*Match, error) {
	args := m.Called(root)
	match, _ := args.Get(0).(*Match)
	return match, args.Error(1)
}

func TestChain_StopsAtFirstMatch(t *testing.T) {
	root := t.TempDir()

	first := &mockDetector{}
	first.On("Detect", root).Return(&Match{Name: "first"}, nil).Once()
	second := &mockDetector{}

	chain := &Chain{
		detectors: []Detector{first, second},
		logger:    logging.ForTest(t),
	}

	m, err := chain.Detect(root)
	require.NoError(t, err)
	require.Equal(t, "first", m.Name)

	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Detect", mock.Anything)
}

func TestChain_DeclinedDetectorPassesThrough(t *testing.T) {
	root := t.TempDir()

	first := &mockDetector{}
	first.On("Name").Return("first").Maybe()
	first.On("Detect", root).Return(nil, nil).Once()
	second := &mockDetector{}
	second.On("Name").Return("second").Maybe()
	second.On("Detect", root).Return(&Match{Name: "second"}, nil).Once()

	chain := &Chain{
		detectors: []Detector{first, second},
		logger:    logging.ForTest(t),
	}

	m, err := chain.Detect(root)
	require.NoError(t, err)
	require.Equal(t, "second", m.Name)

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestChain_DetectorErrorStopsChain(t *testing.T) {
	root := t.TempDir()

	first := &mockDetector{}
	first.On("Name").Return("first").Maybe()
	first.On("Detect", root).Return(nil, detectFailure{}).Once()
	second := &mockDetector{}

	chain := &Chain{
		detectors: []Detector{first, second},
		logger:    logging.ForTest(t),
	}

	_, err := chain.Detect(root)
	require.Error(t, err)
	second.AssertNotCalled(t, "Detect", mock.Anything)
}

// detectFailure is a trivial error type for the mock to return.
type detectFailure struct{}

func (detectFailure) Error() string { return "boom" }
