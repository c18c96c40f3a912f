// Package core contains the pure domain of the example: a small public library
// whose catalog holds book titles and whose users borrow and return them.
//
// Domain events describe what happened (BookAddedToCatalog, BookBorrowedByUser,
// BookReturnedByUser, BorrowingBookFailed) and render the notification text sent
// to subscribers. Decide functions in the feature slices return a DecisionResult
// built from these events.
//
// Users are created by CreateUser from a closed set of kinds (Student, Teacher,
// Librarian), each with a fixed permission description.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
