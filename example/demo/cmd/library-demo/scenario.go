package main

import (
	"context"
	"fmt"
	"io"

	"github.com/AntonStoeckl/library-patterns-go/example/facade"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/core"
	"github.com/AntonStoeckl/library-patterns-go/example/shared/shell/bookdata"
	"github.com/AntonStoeckl/library-patterns-go/notifier"
)

const (
	broadcastMessage = "New book available!"
	addedTitle       = "Python for Beginners"
	borrowedTitle    = "Clean Code"
)

// RunScenario walks through every library operation and prints what happens to out.
func RunScenario(ctx context.Context, out io.Writer, lib *facade.Library, data BookData) error {
	if err := importBookData(ctx, out, lib, data); err != nil {
		return err
	}

	users, err := createUsers(out)
	if err != nil {
		return err
	}

	student, teacher := users[0], users[1]
	observers := []notifier.Observer{
		notifier.NewWriterObserver(student.Name(), out),
		notifier.NewWriterObserver(teacher.Name(), out),
	}

	if err := broadcast(ctx, observers); err != nil {
		return err
	}

	for _, observer := range observers {
		if err := lib.Subscribe(observer); err != nil {
			return err
		}
	}

	if err := lib.AddBook(ctx, addedTitle); err != nil {
		return err
	}

	outcome, err := lib.BorrowBook(ctx, borrowedTitle, student)
	if err != nil {
		return err
	}

	if outcome.Unavailable {
		fmt.Fprintln(out, outcome.Message)
	}

	if err := lib.ReturnBook(ctx, borrowedTitle, student); err != nil {
		return err
	}

	return printCatalog(ctx, out, lib)
}

func importBookData(ctx context.Context, out io.Writer, lib *facade.Library, data BookData) error {
	sources := []struct {
		raw     string
		adapter bookdata.BookDataAdapter
	}{
		{raw: data.JSON, adapter: bookdata.NewJSONAdapter()},
		{raw: data.CSV, adapter: bookdata.NewCSVAdapter()},
		{raw: data.YAML, adapter: bookdata.NewYAMLAdapter()},
	}

	for _, source := range sources {
		if source.raw == "" {
			continue
		}

		count, err := lib.ImportBooks(ctx, source.raw, source.adapter)
		if err != nil {
			return fmt.Errorf("importing %s data: %w", source.adapter.Format(), err)
		}

		fmt.Fprintf(out, "Imported %d books from %s data.\n", count, source.adapter.Format())
	}

	return nil
}

func createUsers(out io.Writer) ([]core.User, error) {
	specs := []struct {
		tag  string
		name string
	}{
		{tag: "Student", name: "Anna"},
		{tag: "Teacher", name: "Jan"},
		{tag: "Librarian", name: "Maria"},
	}

	users := make([]core.User, 0, len(specs))

	for _, s := range specs {
		user, err := core.CreateUserFromTag(s.tag, s.name)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(out, "%s (%s): %s\n", user.Name(), user.Kind(), user.Permissions())
		users = append(users, user)
	}

	return users, nil
}

// broadcast sends one message through a standalone notifier, independent of the facade's own notifier.
func broadcast(ctx context.Context, observers []notifier.Observer) error {
	standalone, err := notifier.NewNotifier()
	if err != nil {
		return err
	}

	for _, observer := range observers {
		if err := standalone.Subscribe(observer); err != nil {
			return err
		}
	}

	return standalone.Notify(ctx, broadcastMessage)
}

func printCatalog(ctx context.Context, out io.Writer, lib *facade.Library) error {
	books, err := lib.Books(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Books in the catalog:")

	for title := range books.All() {
		fmt.Fprintf(out, "- %s\n", title)
	}

	return nil
}
