package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResumeJSON = `{
	"title": "Backend Engineer",
	"contact": {"name": "Jane Doe", "email": "jane@example.com"},
	"summary": "Backend engineer.",
	"experience": [{
		"company": "Acme",
		"role": "Engineer",
		"start_date": "2020-01",
		"end_date": "present",
		"bullets": ["Shipped things"]
	}],
	"skill_groups": [{"label": "Languages", "skills": ["Go"]}]
}`

func TestValidateResume_Valid(t *testing.T) {
	err := ValidateResume([]byte(validResumeJSON))
	assert.NoError(t, err)
}

func TestValidateResume_MissingContactName(t *testing.T) {
	err := ValidateResume([]byte(`{"contact": {"email": "jane@example.com"}}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Equal(t, "contact", validationErr.Errors[0].Field)
}

func TestValidateResume_BadDateFormat(t *testing.T) {
	err := ValidateResume([]byte(`{
		"contact": {"name": "Jane"},
		"experience": [{"company": "Acme", "role": "Engineer", "start_date": "January 2020"}]
	}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateResume_UnknownField(t *testing.T) {
	err := ValidateResume([]byte(`{"contact": {"name": "Jane"}, "hobbies": []}`))
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	assert.True(t, ok, "error should be ValidationError type")
}

func TestValidateResume_MalformedJSON(t *testing.T) {
	err := ValidateResume([]byte(`{"contact":`))
	require.Error(t, err)

	loadErr, ok := err.(*SchemaLoadError)
	require.True(t, ok, "error should be SchemaLoadError type")
	assert.Equal(t, "resume", loadErr.Schema)
}

func TestValidateCoverLetter_Valid(t *testing.T) {
	err := ValidateCoverLetter([]byte(`{
		"contact": {"name": "Jane Doe"},
		"recipient": {"company": "Acme"},
		"body": ["I am writing to apply."]
	}`))
	assert.NoError(t, err)
}

func TestValidateCoverLetter_EmptyBody(t *testing.T) {
	err := ValidateCoverLetter([]byte(`{
		"contact": {"name": "Jane Doe"},
		"recipient": {"company": "Acme"},
		"body": []
	}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateCoverLetter_MissingRecipientCompany(t *testing.T) {
	err := ValidateCoverLetter([]byte(`{
		"contact": {"name": "Jane Doe"},
		"recipient": {"name": "Dr. Roe"},
		"body": ["Hello."]
	}`))
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	assert.True(t, ok, "error should be ValidationError type")
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := ValidateResume([]byte(`{"contact": {}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "contact")
}
