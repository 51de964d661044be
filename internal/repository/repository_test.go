package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stemsi/school-helper-backend/internal/database"
	"github.com/stemsi/school-helper-backend/internal/model"
	"github.com/stemsi/school-helper-backend/internal/repository/repositorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStudentRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := repositorytest.NewMemoryStore()
	repo := NewStudentRepository(store)

	id, err := repo.Create(ctx, &model.CreateStudentRequest{
		FullName:  "Asha Rao",
		RollNo:    "12",
		ClassName: "5",
		Section:   strPtr("B"),
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID.Hex())
	assert.Equal(t, "Asha Rao", got.FullName)
	assert.Equal(t, "B", *got.Section)
	assert.Nil(t, got.DOB)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	docs := store.Documents(CollectionStudent)
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0], database.FieldCreatedAt)
}

func TestStudentRepositoryGetByIDFallsBackToPlainID(t *testing.T) {
	ctx := context.Background()
	store := repositorytest.NewMemoryStore()
	store.Insert(CollectionStudent, database.Document{
		"id":         "legacy-7",
		"full_name":  "Imported Student",
		"roll_no":    "7",
		"class_name": "4",
	})
	repo := NewStudentRepository(store)

	got, err := repo.GetByID(ctx, "legacy-7")
	require.NoError(t, err)
	assert.Equal(t, "Imported Student", got.FullName)

	_, err = repo.GetByID(ctx, "0123456789abcdef01234567")
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestStudentRepositoryExistsByRollNo(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(repositorytest.NewMemoryStore())

	exists, err := repo.ExistsByRollNo(ctx, "1")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(ctx, &model.CreateStudentRequest{FullName: "A", RollNo: "1", ClassName: "5"})
	require.NoError(t, err)

	exists, err = repo.ExistsByRollNo(ctx, "1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStudentRepositoryListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(repositorytest.NewMemoryStore())

	seed := []model.CreateStudentRequest{
		{FullName: "A", RollNo: "1", ClassName: "5", Section: strPtr("A")},
		{FullName: "B", RollNo: "2", ClassName: "5", Section: strPtr("B")},
		{FullName: "C", RollNo: "3", ClassName: "6", Section: strPtr("A")},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, model.StudentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "A", all[0].FullName)

	fifth, err := repo.List(ctx, model.StudentFilter{ClassName: "5"})
	require.NoError(t, err)
	assert.Len(t, fifth, 2)

	narrowed, err := repo.List(ctx, model.StudentFilter{ClassName: "5", Section: "B"})
	require.NoError(t, err)
	require.Len(t, narrowed, 1)
	assert.Equal(t, "2", narrowed[0].RollNo)

	limited, err := repo.List(ctx, model.StudentFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := repo.List(ctx, model.StudentFilter{ClassName: "12"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAttendanceRepositoryFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(repositorytest.NewMemoryStore())

	for _, status := range []model.AttendanceStatus{model.AttendancePresent, model.AttendanceAbsent, model.AttendancePresent} {
		_, err := repo.Create(ctx, &model.CreateAttendanceRequest{StudentID: "s1", Date: "2025-01-10", Status: status})
		require.NoError(t, err)
	}

	present, err := repo.List(ctx, model.AttendanceFilter{Status: "Present"})
	require.NoError(t, err)
	assert.Len(t, present, 2)
	for _, rec := range present {
		assert.Equal(t, model.AttendancePresent, rec.Status)
	}

	other, err := repo.List(ctx, model.AttendanceFilter{StudentID: "s1", Date: "2025-01-11"})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMarksheetAndAdmitCardRepositories(t *testing.T) {
	ctx := context.Background()
	store := repositorytest.NewMemoryStore()
	sheets := NewMarksheetRepository(store)
	cards := NewAdmitCardRepository(store)

	marks := 45.0
	_, err := sheets.Create(ctx, &model.CreateMarksheetRequest{
		StudentID: "s1", ExamName: "Final", ClassName: "5", Year: 2025,
		Subjects: []model.SubjectMark{{Name: "Math", Marks: &marks, MaxMarks: 50}},
	})
	require.NoError(t, err)

	_, err = cards.Create(ctx, &model.CreateAdmitCardRequest{
		StudentID: "s1", RollNo: "1", ClassName: "5", ExamName: "Final", Center: strPtr("Hall 2"),
	})
	require.NoError(t, err)

	gotSheets, err := sheets.List(ctx, model.ExamFilter{StudentID: "s1", ExamName: "Final"})
	require.NoError(t, err)
	require.Len(t, gotSheets, 1)
	require.Len(t, gotSheets[0].Subjects, 1)
	assert.Equal(t, 45.0, gotSheets[0].Subjects[0].Obtained())

	gotCards, err := cards.List(ctx, model.ExamFilter{ExamName: "Midterm"})
	require.NoError(t, err)
	assert.Empty(t, gotCards)

	gotCards, err = cards.List(ctx, model.ExamFilter{StudentID: "s1"})
	require.NoError(t, err)
	require.Len(t, gotCards, 1)
	assert.Equal(t, "Hall 2", *gotCards[0].Center)
}

func TestRepositoriesPropagateStoreErrors(t *testing.T) {
	ctx := context.Background()
	store := repositorytest.NewMemoryStore()
	store.Err = errors.New("connection reset")

	_, err := NewStudentRepository(store).ExistsByRollNo(ctx, "1")
	assert.EqualError(t, err, "connection reset")

	_, err = NewMarksheetRepository(store).List(ctx, model.ExamFilter{})
	assert.Error(t, err)
}

func TestRepositoriesOnUnconfiguredStore(t *testing.T) {
	ctx := context.Background()
	store := database.Unconfigured(false, "")

	_, err := NewAdmitCardRepository(store).Create(ctx, &model.CreateAdmitCardRequest{StudentID: "s1"})
	assert.ErrorIs(t, err, database.ErrNotConfigured)

	_, err = NewStudentRepository(store).GetByID(ctx, "abc")
	assert.ErrorIs(t, err, database.ErrNotConfigured)
}
