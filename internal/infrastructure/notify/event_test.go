package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regportal/internal/domain/entities"
)

func TestRegistrationCreatedWireFormat(t *testing.T) {
	reg := entities.Registration{
		ID:          7,
		Email:       "priya@college.edu",
		StudentName: "Priya Raman",
		CollegeName: "North College",
		EventName:   "e-sports",
		CreatedAt:   time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
		// Fields below must not leak onto the bus.
		Phone:            "9876543210",
		UploadedFilePath: "uploads/deck.pdf",
	}

	data, err := json.Marshal(fromRegistration(reg))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "priya@college.edu", raw["email"])
	assert.Equal(t, "e-sports", raw["event_name"])
	assert.NotContains(t, raw, "phone")
	assert.NotContains(t, raw, "uploaded_file_path")
}

func TestLogNotifierNeverFails(t *testing.T) {
	n := LogNotifier{}
	err := n.RegistrationCreated(context.Background(), entities.Registration{Email: "x@y.edu"})
	assert.NoError(t, err)
}
