package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidArgument is returned when a user kind is not one of the known kinds.
var ErrInvalidArgument = errors.New("invalid argument")

// UserKind is the closed set of user variants.
type UserKind int

const (
	// StudentKind creates a Student.
	StudentKind UserKind = iota + 1

	// TeacherKind creates a Teacher.
	TeacherKind

	// LibrarianKind creates a Librarian.
	LibrarianKind
)

const (
	studentPermissions   = "Can borrow up to 3 books."
	teacherPermissions   = "Can borrow up to 10 books."
	librarianPermissions = "Can manage books and users."
)

// String returns the tag of the kind, as accepted by ParseUserKind.
func (k UserKind) String() string {
	switch k {
	case StudentKind:
		return "Student"
	case TeacherKind:
		return "Teacher"
	case LibrarianKind:
		return "Librarian"
	default:
		return fmt.Sprintf("UserKind(%d)", int(k))
	}
}

// ParseUserKind maps a tag ("Student", "Teacher", "Librarian") to its UserKind.
func ParseUserKind(tag string) (UserKind, error) {
	for _, kind := range []UserKind{StudentKind, TeacherKind, LibrarianKind} {
		if kind.String() == tag {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown user type: %q", ErrInvalidArgument, tag)
}

// User is a named holder of library permissions. Users are immutable.
type User interface {
	ID() uuid.UUID
	Name() UserNameString
	Kind() UserKind
	Permissions() string
}

type userData struct {
	id   uuid.UUID
	name UserNameString
}

func (u userData) ID() uuid.UUID {
	return u.id
}

func (u userData) Name() UserNameString {
	return u.name
}

// Student can borrow a few books.
type Student struct {
	userData
}

// Kind returns StudentKind.
func (Student) Kind() UserKind {
	return StudentKind
}

// Permissions returns the fixed permission description of students.
func (Student) Permissions() string {
	return studentPermissions
}

// Teacher can borrow more books than a Student.
type Teacher struct {
	userData
}

// Kind returns TeacherKind.
func (Teacher) Kind() UserKind {
	return TeacherKind
}

// Permissions returns the fixed permission description of teachers.
func (Teacher) Permissions() string {
	return teacherPermissions
}

// Librarian manages books and users.
type Librarian struct {
	userData
}

// Kind returns LibrarianKind.
func (Librarian) Kind() UserKind {
	return LibrarianKind
}

// Permissions returns the fixed permission description of librarians.
func (Librarian) Permissions() string {
	return librarianPermissions
}

// CreateUser creates the user variant for the kind, with a fresh ID.
func CreateUser(kind UserKind, name UserNameString) (User, error) {
	return CreateUserWithID(kind, uuid.New(), name)
}

// CreateUserWithID creates the user variant for the kind with the given ID.
func CreateUserWithID(kind UserKind, id uuid.UUID, name UserNameString) (User, error) {
	data := userData{id: id, name: name}

	switch kind {
	case StudentKind:
		return Student{userData: data}, nil
	case TeacherKind:
		return Teacher{userData: data}, nil
	case LibrarianKind:
		return Librarian{userData: data}, nil
	default:
		return nil, fmt.Errorf("%w: unknown user type: %s", ErrInvalidArgument, kind)
	}
}

// CreateUserFromTag parses the tag and creates the matching user.
func CreateUserFromTag(tag string, name UserNameString) (User, error) {
	kind, err := ParseUserKind(tag)
	if err != nil {
		return nil, err
	}

	return CreateUser(kind, name)
}
