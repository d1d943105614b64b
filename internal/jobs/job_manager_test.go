package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJob struct {
	name     string
	startErr error
	log      *[]string
}

func (j *fakeJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.log = append(*j.log, "start "+j.name)
	return nil
}

func (j *fakeJob) Stop() {
	*j.log = append(*j.log, "stop "+j.name)
}

func TestJobManager_StartAndStopInOrder(t *testing.T) {
	var log []string
	jm := NewJobManager(&fakeJob{name: "a", log: &log}, &fakeJob{name: "b", log: &log})

	require.NoError(t, jm.StartAll())
	jm.StopAll()
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
}

func TestJobManager_FailedStartStopsStartedJobs(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	jm := NewJobManager(
		&fakeJob{name: "a", log: &log},
		&fakeJob{name: "b", log: &log, startErr: boom},
		&fakeJob{name: "c", log: &log},
	)

	err := jm.StartAll()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start a", "stop a"}, log)
}
