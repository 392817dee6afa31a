package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/pkg/export"
)

func TestExportServiceSessionsCSV(t *testing.T) {
	slot := "15.30-17.00"
	className := "Junior A"
	sessions := &sessionCRUDStub{views: []models.SessionView{
		{
			Session:   models.Session{ID: 1, Name: "Session 1", ClassID: "junior-a", Date: "2024-06-03", Time: &slot, Status: "Active"},
			ClassName: &className,
		},
	}}
	service := NewExportService(sessions, export.NewCSVExporter(), export.NewPDFExporter(), nil)

	out, err := service.SessionsCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Date,Time,Name,Class,Coach,Location,Court,Status,Notes", lines[0])
	assert.Contains(t, lines[1], "2024-06-03")
	assert.Contains(t, lines[1], "Junior A")
}

func TestExportServiceSessionsPDF(t *testing.T) {
	sessions := &sessionCRUDStub{views: []models.SessionView{
		{Session: models.Session{ID: 1, Name: "Session 1", ClassID: "junior-a", Date: "2024-06-03", Status: "Active"}},
	}}
	service := NewExportService(sessions, export.NewCSVExporter(), export.NewPDFExporter(), nil)

	out, err := service.SessionsPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}
