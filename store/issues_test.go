package store

import (
	"context"
	"testing"

	"civic-reporter-be/apperr"
	"civic-reporter-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueStore_CreateValidation(t *testing.T) {
	s := &IssueStore{} // validation fails before the collection is touched

	valid := CreateIssueInput{
		Title:          "Broken lamp",
		Description:    "Flickers all night",
		ObjectLocation: "5th & Main",
		ObjectType:     "streetlight",
		AadharNumber:   "123412341234",
	}

	tests := []struct {
		name   string
		mutate func(*CreateIssueInput)
	}{
		{"missing aadhar", func(in *CreateIssueInput) { in.AadharNumber = "" }},
		{"missing title", func(in *CreateIssueInput) { in.Title = " " }},
		{"missing description", func(in *CreateIssueInput) { in.Description = "" }},
		{"missing object location", func(in *CreateIssueInput) { in.ObjectLocation = "" }},
		{"missing object type", func(in *CreateIssueInput) { in.ObjectType = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, _, err := s.Create(context.Background(), in)
			require.Error(t, err)
			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)
		})
	}
}

func TestIssueStore_AppendCommentUnresolvableID(t *testing.T) {
	s := &IssueStore{}

	err := s.AppendComment(context.Background(), "not-a-hex-id", models.Comment{Text: "hi"})
	assert.ErrorIs(t, err, apperr.ErrIssueNotFound)
}

func TestIssueStore_UpdateStatusValidation(t *testing.T) {
	s := &IssueStore{}

	err := s.UpdateStatus(context.Background(), "not-a-hex-id", "resolved")
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)

	err = s.UpdateStatus(context.Background(), "not-a-hex-id", "closed")
	assert.ErrorIs(t, err, apperr.ErrIssueNotFound)
}

func TestGroupByLocation(t *testing.T) {
	issues := []models.Issue{
		{ObjectLocation: "5th & Main", ObjectType: models.Streetlight, QRCodeID: "QR-1", Title: "a"},
		{ObjectLocation: "Park Ave", ObjectType: models.GarbageCan, Title: "b"},
		{ObjectLocation: "5th & Main", ObjectType: models.Streetlight, QRCodeID: "QR-1", Title: "c"},
		{ObjectLocation: "Hill Rd", ObjectType: models.Road, Title: "d"},
		{ObjectLocation: "5th & Main", ObjectType: models.Streetlight, QRCodeID: "QR-1", Title: "e"},
		{ObjectLocation: "Park Ave", ObjectType: models.GarbageCan, Title: "f"},
	}

	groups := GroupByLocation(issues)
	require.Len(t, groups, 3)

	assert.Equal(t, "5th & Main", groups[0].ObjectLocation)
	assert.Equal(t, 3, groups[0].Count)
	assert.Equal(t, models.Streetlight, groups[0].ObjectType)
	assert.Equal(t, "QR-1", groups[0].QRCodeID)
	assert.Len(t, groups[0].Issues, 3)

	assert.Equal(t, "Park Ave", groups[1].ObjectLocation)
	assert.Equal(t, 2, groups[1].Count)

	assert.Equal(t, "Hill Rd", groups[2].ObjectLocation)
	assert.Equal(t, 1, groups[2].Count)
}

func TestGroupByLocation_Empty(t *testing.T) {
	assert.Empty(t, GroupByLocation(nil))
}
