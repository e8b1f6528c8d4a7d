package versia

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// entityDoc builds a payload from the shared fields plus overrides.
func entityDoc(t *testing.T, entityType string, fields map[string]any) []byte {
	t.Helper()

	doc := map[string]any{
		"id":         "0b9cf22c-abaa-4f65-93c5-45e138b09d61",
		"type":       entityType,
		"uri":        "https://remote.example/objects/1",
		"author":     "https://remote.example/users/bob",
		"created_at": time.Now().UTC(),
	}
	for key, value := range fields {
		if value == nil {
			delete(doc, key)
			continue
		}
		doc[key] = value
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestValidateEntityNote(t *testing.T) {
	raw := entityDoc(t, "Note", map[string]any{
		"content": map[string]any{
			"text/plain": map[string]any{"content": "hi"},
		},
		"visibility": "public",
		"replies_to": []string{"https://remote.example/notes/parent"},
	})

	entity, err := ValidateEntity(raw)
	if err != nil {
		t.Fatal(err)
	}
	note, ok := entity.(*Note)
	if !ok {
		t.Fatalf("got %T, want *Note", entity)
	}
	if note.Content["text/plain"].Content != "hi" {
		t.Errorf("content = %q, want %q", note.Content["text/plain"].Content, "hi")
	}
	if len(note.RepliesTo) != 1 {
		t.Errorf("got %d reply targets, want 1", len(note.RepliesTo))
	}
}

func TestValidateEntityRejections(t *testing.T) {
	tests := []struct {
		name  string
		raw   []byte
		field string
	}{
		{
			name:  "missing type",
			raw:   entityDoc(t, "Note", map[string]any{"type": nil}),
			field: "type",
		},
		{
			name:  "unknown type",
			raw:   entityDoc(t, "Zap", nil),
			field: "type",
		},
		{
			name:  "malformed json",
			raw:   []byte(`{"type": "Note",`),
			field: "",
		},
		{
			name:  "id not a uuid",
			raw:   entityDoc(t, "Note", map[string]any{"id": "note-1"}),
			field: "id",
		},
		{
			name:  "relative uri",
			raw:   entityDoc(t, "Note", map[string]any{"uri": "/objects/1"}),
			field: "uri",
		},
		{
			name:  "missing created_at",
			raw:   entityDoc(t, "Note", map[string]any{"created_at": nil}),
			field: "created_at",
		},
		{
			name:  "missing author",
			raw:   entityDoc(t, "Note", map[string]any{"author": nil}),
			field: "author",
		},
		{
			name: "note bad mime key",
			raw: entityDoc(t, "Note", map[string]any{
				"content": map[string]any{"TEXT PLAIN": map[string]any{"content": "hi"}},
			}),
			field: "content",
		},
		{
			name:  "note unknown visibility",
			raw:   entityDoc(t, "Note", map[string]any{"visibility": "loud"}),
			field: "visibility",
		},
		{
			name: "note relative reply target",
			raw: entityDoc(t, "Note", map[string]any{
				"replies_to": []string{"/notes/parent"},
			}),
			field: "replies_to[0]",
		},
		{
			name:  "patch missing patched_id",
			raw:   entityDoc(t, "Patch", nil),
			field: "patched_id",
		},
		{
			name: "user missing public key",
			raw: entityDoc(t, "User", map[string]any{
				"username": "bob",
				"inbox":    "https://remote.example/inbox",
			}),
			field: "public_key.public_key",
		},
		{
			name: "user missing inbox",
			raw: entityDoc(t, "User", map[string]any{
				"username":   "bob",
				"public_key": map[string]any{"public_key": "pem"},
			}),
			field: "inbox",
		},
		{
			name:  "like missing object",
			raw:   entityDoc(t, "Like", nil),
			field: "object",
		},
		{
			name:  "follow missing followee",
			raw:   entityDoc(t, "Follow", nil),
			field: "followee",
		},
		{
			name: "reaction missing content",
			raw: entityDoc(t, "Reaction", map[string]any{
				"object": "https://remote.example/notes/1",
			}),
			field: "content",
		},
		{
			name:  "poll without options",
			raw:   entityDoc(t, "Poll", nil),
			field: "options",
		},
		{
			name: "vote negative option",
			raw: entityDoc(t, "Vote", map[string]any{
				"poll":   "https://remote.example/polls/1",
				"option": -1,
			}),
			field: "option",
		},
		{
			name:  "report without objects",
			raw:   entityDoc(t, "Report", nil),
			field: "objects",
		},
		{
			name:  "server metadata without name",
			raw:   entityDoc(t, "ServerMetadata", map[string]any{"author": nil}),
			field: "name",
		},
		{
			name:  "extension without extension_type",
			raw:   entityDoc(t, "Extension", nil),
			field: "extension_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateEntity(tt.raw)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("got %v, want a ValidationError", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("field = %q, want %q", validationErr.Field, tt.field)
			}
		})
	}
}

func TestValidateEntityServerMetadataWithoutAuthor(t *testing.T) {
	raw := entityDoc(t, "ServerMetadata", map[string]any{
		"author": nil,
		"name":   "remote.example",
	})

	entity, err := ValidateEntity(raw)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := entity.(*ServerMetadata); !ok {
		t.Fatalf("got %T, want *ServerMetadata", entity)
	}
}

func TestValidateEntityKeepsExtensions(t *testing.T) {
	raw := entityDoc(t, "Like", map[string]any{
		"object": "https://remote.example/notes/1",
		"extensions": map[string]any{
			"example.org:custom": map[string]any{"value": 1},
		},
	})

	entity, err := ValidateEntity(raw)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := entity.Base().Extensions["example.org:custom"]; !ok {
		t.Error("extension payload dropped during validation")
	}
}

func TestParseVisibility(t *testing.T) {
	for _, s := range []string{"public", "unlisted", "private", "direct"} {
		if _, ok := ParseVisibility(s); !ok {
			t.Errorf("ParseVisibility(%q) = false, want true", s)
		}
	}
	if _, ok := ParseVisibility("loud"); ok {
		t.Error(`ParseVisibility("loud") = true, want false`)
	}
}
