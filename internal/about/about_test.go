package about

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *Input {
	return &Input{
		Name:     "Jan Novak",
		Title:    "Full Stack Developer",
		Bio:      "I build web applications",
		Location: "Prague, Czech Republic",
		Email:    "jan@example.com",
	}
}

func TestAboutService_Update_ShouldCreateProfileWhenMissing(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)

	// when
	a, err := service.Update(validInput())

	// then
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Jan Novak", a.Name)
	assert.NotNil(t, a.Socials)
}

func TestAboutService_Update_ShouldReplaceExistingProfile(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)
	first, err := service.Update(validInput())
	require.NoError(t, err)

	in := validInput()
	in.Title = "Backend Developer"
	in.Phone = "+420 123 456 789"

	// when
	updated, err := service.Update(in)

	// then
	require.NoError(t, err)
	assert.Equal(t, first.ID, updated.ID)
	assert.Equal(t, "Backend Developer", updated.Title)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+420 123 456 789", *updated.Phone)
}

func TestAboutService_Update_ShouldRejectInvalidEmail(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)
	in := validInput()
	in.Email = "not-an-email"

	// when
	_, err := service.Update(in)

	// then
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAboutService_Get_ShouldEmbedSocials(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)
	_, err := service.Update(validInput())
	require.NoError(t, err)

	_, err = service.AddSocial(&SocialInput{
		Name: "GitHub",
		URL:  "https://github.com/jannovak",
		Icon: "github",
	})
	require.NoError(t, err)

	// when
	a, err := service.Get()

	// then
	require.NoError(t, err)
	require.Len(t, a.Socials, 1)
	assert.Equal(t, "GitHub", a.Socials[0].Name)
	assert.Equal(t, a.ID, a.Socials[0].AboutID)
}

func TestAboutService_Get_ShouldFailWhenNoProfileExists(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)

	// when
	_, err := service.Get()

	// then
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAboutService_AddSocial_ShouldAcceptMailtoURL(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)
	_, err := service.Update(validInput())
	require.NoError(t, err)

	// when
	social, err := service.AddSocial(&SocialInput{
		Name: "Email",
		URL:  "mailto:jan@example.com",
		Icon: "mail",
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, "mailto:jan@example.com", social.URL)
}

func TestAboutService_AddSocial_ShouldRejectInvalidURL(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)
	_, err := service.Update(validInput())
	require.NoError(t, err)

	// when
	_, err = service.AddSocial(&SocialInput{Name: "GitHub", URL: "github", Icon: "github"})

	// then
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAboutService_AddSocial_ShouldFailWithoutProfile(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)

	// when
	_, err := service.AddSocial(&SocialInput{
		Name: "GitHub",
		URL:  "https://github.com/jannovak",
		Icon: "github",
	})

	// then
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAboutService_DeleteSocial_ShouldRemoveSocial(t *testing.T) {
	// given
	service := NewAboutService(NewMemoryRepository(), nil)
	_, err := service.Update(validInput())
	require.NoError(t, err)

	social, err := service.AddSocial(&SocialInput{
		Name: "LinkedIn",
		URL:  "https://linkedin.com/in/jannovak",
		Icon: "linkedin",
	})
	require.NoError(t, err)

	// when
	err = service.DeleteSocial(social.ID)

	// then
	require.NoError(t, err)
	a, err := service.Get()
	require.NoError(t, err)
	assert.Empty(t, a.Socials)
}
