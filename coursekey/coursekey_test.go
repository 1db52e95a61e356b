package coursekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("should parse a course-v1 key", func(t *testing.T) {
		key, err := Parse("course-v1:TestOrg+ToyCourse+2T2025")
		require.NoError(t, err)
		assert.Equal(t, "TestOrg", key.Org)
		assert.Equal(t, "ToyCourse", key.Course)
		assert.Equal(t, "2T2025", key.Run)
		assert.Equal(t, "course-v1:TestOrg+ToyCourse+2T2025", key.String())
	})

	t.Run("should parse a legacy key and keep its serialization", func(t *testing.T) {
		key, err := Parse("TestOrg/ToyCourse/2T2025")
		require.NoError(t, err)
		assert.Equal(t, "TestOrg", key.Org)
		assert.Equal(t, "TestOrg/ToyCourse/2T2025", key.String())
	})

	t.Run("should reject malformed keys", func(t *testing.T) {
		for _, s := range []string{
			"",
			"not-a-key",
			"course-v1:TooFew+Parts",
			"course-v1:Too+Many+Parts+Here",
			"Org/Course",
			"course-v1:Org+Cou rse+Run",
			"course-v1:Org++Run",
		} {
			_, err := Parse(s)
			assert.Errorf(t, err, "expected %q to be rejected", s)

			var invalidErr *InvalidCourseKeyError
			assert.ErrorAs(t, err, &invalidErr)
		}
	})
}

func TestNormalize(t *testing.T) {
	t.Run("normalization is stable", func(t *testing.T) {
		normalized, err := Normalize("course-v1:Org+Course+Run")
		require.NoError(t, err)

		again, err := Normalize(normalized)
		require.NoError(t, err)
		assert.Equal(t, normalized, again)
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("course-v1:Org+Course+Run"))
	assert.True(t, IsValid("Org/Course/Run"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("garbage"))
}
