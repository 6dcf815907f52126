package analyzer_test

import (
	"testing"

	"github.com/sand97/nest-responses-generator/internal/analyzer"
)

func TestMethodSummary_FirstLine(t *testing.T) {
	src := `class S {
		/**
		 * Returns all users.
		 * Supports pagination through query params.
		 */
		findAll() { return []; }
	}`
	m := method(t, src, "findAll")
	if got := analyzer.MethodSummary(m); got != "Returns all users." {
		t.Errorf("got %q", got)
	}
}

func TestMethodSummary_SummaryTagWins(t *testing.T) {
	src := `class S {
		/**
		 * Long prose that should not be used.
		 * @summary List users
		 */
		findAll() { return []; }
	}`
	m := method(t, src, "findAll")
	if got := analyzer.MethodSummary(m); got != "List users" {
		t.Errorf("got %q", got)
	}
}

func TestMethodSummary_NoJSDoc(t *testing.T) {
	m := method(t, `class S { findAll() { return []; } }`, "findAll")
	if got := analyzer.MethodSummary(m); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestMethodSummary_SingleLine(t *testing.T) {
	src := `class S {
		/** Deletes a user by id. */
		remove(id) { return { deleted: true }; }
	}`
	m := method(t, src, "remove")
	if got := analyzer.MethodSummary(m); got != "Deletes a user by id." {
		t.Errorf("got %q", got)
	}
}
