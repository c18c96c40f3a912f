package core_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
)

func Test_CreateUser_EachKindHasItsFixedPermissions(t *testing.T) {
	testCases := []struct {
		kind                core.UserKind
		expectedPermissions string
	}{
		{core.StudentKind, "Can borrow up to 3 books."},
		{core.TeacherKind, "Can borrow up to 10 books."},
		{core.LibrarianKind, "Can manage books and users."},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			// act
			user, err := core.CreateUser(tc.kind, "x")

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.expectedPermissions, user.Permissions())
			assert.Equal(t, tc.kind, user.Kind())
			assert.Equal(t, "x", user.Name())
			assert.NotEqual(t, uuid.Nil, user.ID())
		})
	}
}

func Test_CreateUser_PermissionsAreDistinct(t *testing.T) {
	student, _ := core.CreateUser(core.StudentKind, "x")
	teacher, _ := core.CreateUser(core.TeacherKind, "x")
	librarian, _ := core.CreateUser(core.LibrarianKind, "x")

	assert.NotEqual(t, student.Permissions(), teacher.Permissions())
	assert.NotEqual(t, teacher.Permissions(), librarian.Permissions())
	assert.NotEqual(t, student.Permissions(), librarian.Permissions())
}

func Test_CreateUser_UnknownKindFailsWithInvalidArgument(t *testing.T) {
	// act
	user, err := core.CreateUser(core.UserKind(42), "x")

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Nil(t, user)
}

func Test_CreateUserFromTag_BogusTagFailsWithInvalidArgument(t *testing.T) {
	// act
	user, err := core.CreateUserFromTag("Bogus", "x")

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.ErrorContains(t, err, "Bogus")
	assert.Nil(t, user)
}

func Test_CreateUserFromTag_KnownTags(t *testing.T) {
	for _, tag := range []string{"Student", "Teacher", "Librarian"} {
		user, err := core.CreateUserFromTag(tag, "Anna")

		require.NoError(t, err, tag)
		assert.Equal(t, tag, user.Kind().String())
	}
}

func Test_ParseUserKind_IsCaseSensitive(t *testing.T) {
	_, err := core.ParseUserKind("student")

	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func Test_CreateUserWithID_KeepsGivenID(t *testing.T) {
	id := uuid.New()

	user, err := core.CreateUserWithID(core.TeacherKind, id, "Jan")

	require.NoError(t, err)
	assert.Equal(t, id, user.ID())
	assert.IsType(t, core.Teacher{}, user)
}
