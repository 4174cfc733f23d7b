package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrolens/aquaview-demo/services/api/reports"
)

func TestSessionClearsNoticeAfterTTL(t *testing.T) {
	m := NewManager(time.Minute, WithNoticeTTL(40*time.Millisecond))
	s := m.Create()

	_, ch, err := s.Apply(SubmitReport{ReceiptID: "r-1", Type: reports.IssueLeak, Notes: "dripping hydrant"})
	require.NoError(t, err)
	require.NotEmpty(t, ch.Notice)
	assert.Equal(t, ch.Notice, s.Snapshot().Notice)

	require.Eventually(t, func() bool { return s.Snapshot().Notice == "" },
		time.Second, 5*time.Millisecond)

	// Clearing only wipes the text; everything else stays put.
	snap := s.Snapshot()
	assert.Len(t, snap.Reports, 1)
	assert.Equal(t, uint64(1), snap.NoticeSeq)
}

func TestSessionSupersedingReportReplacesNotice(t *testing.T) {
	m := NewManager(time.Minute, WithNoticeTTL(150*time.Millisecond))
	s := m.Create()

	_, _, err := s.Apply(SubmitReport{ReceiptID: "r-1", Type: reports.IssueLeak, Notes: "first"})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	_, ch, err := s.Apply(SubmitReport{ReceiptID: "r-2", CellID: "C1-1", Type: reports.IssuePressure, Notes: "second"})
	require.NoError(t, err)
	second := ch.Notice
	assert.Equal(t, second, s.Snapshot().Notice)

	// Past the first notice's window: the replacement must still be up
	// because superseding re-armed the clear.
	time.Sleep(110 * time.Millisecond)
	assert.Equal(t, second, s.Snapshot().Notice)

	require.Eventually(t, func() bool { return s.Snapshot().Notice == "" },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, uint64(2), s.Snapshot().NoticeSeq)
}

func TestSessionCloseStopsPendingClear(t *testing.T) {
	m := NewManager(time.Minute, WithNoticeTTL(30*time.Millisecond))
	s := m.Create()

	_, _, err := s.Apply(SubmitReport{ReceiptID: "r-1", Type: reports.IssueTheft, Notes: "suspect meter"})
	require.NoError(t, err)
	s.Close()

	time.Sleep(80 * time.Millisecond)

	// The session ended with the notice still posted; nothing fires
	// after Close, and further actions are refused.
	assert.NotEmpty(t, s.Snapshot().Notice)
	_, _, err = s.Apply(AwardPoints{Amount: 5})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSessionApplySerializesMutations(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 25; j++ {
				_, _, err := s.Apply(AwardPoints{Amount: 1})
				assert.NoError(t, err)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 200, s.Snapshot().EcoPoints)
}
