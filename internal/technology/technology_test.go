package technology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *Input {
	return &Input{
		Name:        "Go",
		Icon:        "go",
		Category:    "backend",
		Proficiency: 90,
	}
}

func TestTechnologyService_Create_ShouldPersistTechnology(t *testing.T) {
	// given
	repo := NewMemoryRepository()
	service := NewTechnologyService(repo, nil)

	// when
	created, err := service.Create(validInput())

	// then
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", stored.Name)
	assert.Equal(t, 90, stored.Proficiency)
}

func TestTechnologyService_Create_ShouldRejectUnknownCategory(t *testing.T) {
	// given
	service := NewTechnologyService(NewMemoryRepository(), nil)
	in := validInput()
	in.Category = "databases"

	// when
	_, err := service.Create(in)

	// then
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTechnologyService_Create_ShouldRejectProficiencyOutOfRange(t *testing.T) {
	// given
	service := NewTechnologyService(NewMemoryRepository(), nil)

	for _, proficiency := range []int{0, -5, 101} {
		in := validInput()
		in.Proficiency = proficiency

		// when
		_, err := service.Create(in)

		// then
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestTechnologyService_Update_ShouldReplaceFields(t *testing.T) {
	// given
	service := NewTechnologyService(NewMemoryRepository(), nil)
	created, err := service.Create(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Proficiency = 95

	// when
	updated, err := service.Update(created.ID, in)

	// then
	require.NoError(t, err)
	assert.Equal(t, 95, updated.Proficiency)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestTechnologyService_Delete_ShouldRemoveTechnology(t *testing.T) {
	// given
	repo := NewMemoryRepository()
	service := NewTechnologyService(repo, nil)
	created, err := service.Create(validInput())
	require.NoError(t, err)

	// when
	err = service.Delete(created.ID)

	// then
	require.NoError(t, err)
	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_GetAll_ShouldOrderByProficiencyDescending(t *testing.T) {
	// given
	service := NewTechnologyService(NewMemoryRepository(), nil)

	weak := validInput()
	weak.Name = "PHP"
	weak.Proficiency = 60
	strong := validInput()
	strong.Name = "TypeScript"
	strong.Proficiency = 95

	_, err := service.Create(weak)
	require.NoError(t, err)
	_, err = service.Create(strong)
	require.NoError(t, err)

	// when
	all, err := service.List()

	// then
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "TypeScript", all[0].Name)
	assert.Equal(t, "PHP", all[1].Name)
}

type notifierSpy struct {
	calls [][3]string
}

func (n *notifierSpy) NotifyContentChanged(resource, action, id string) {
	n.calls = append(n.calls, [3]string{resource, action, id})
}

func TestTechnologyService_ShouldNotifyOnMutations(t *testing.T) {
	// given
	spy := &notifierSpy{}
	service := NewTechnologyService(NewMemoryRepository(), spy)

	// when
	created, err := service.Create(validInput())
	require.NoError(t, err)
	require.NoError(t, service.Delete(created.ID))

	// then
	require.Len(t, spy.calls, 2)
	assert.Equal(t, [3]string{"technologies", "created", created.ID}, spy.calls[0])
	assert.Equal(t, [3]string{"technologies", "deleted", created.ID}, spy.calls[1])
}
