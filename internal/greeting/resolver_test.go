package greeting

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/configmaster/configmaster/internal/config"
	"github.com/configmaster/configmaster/internal/i18n"
	"github.com/configmaster/configmaster/internal/logging"
	"github.com/configmaster/configmaster/internal/template"
	"github.com/configmaster/configmaster/internal/validation"
	"github.com/configmaster/configmaster/pkg/models"
)

func cfgWith(lang models.Language, style string) *config.AppConfig {
	cfg := config.NewDefault()
	cfg.Language = lang
	cfg.TemplateStyle = style
	return cfg
}

func TestGreetDefaultStyleLiteralOutputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lang    models.Language
		message string
		want    string
	}{
		{"Taro", models.LanguageJA, "", "こんにちは、Taro! "},
		{"Sam", models.LanguageEN, "", "Hello, Sam! "},
		{"Sam", models.LanguageEN, "Welcome back.", "Hello, Sam! Welcome back."},
		{"Ana", models.LanguageES, "", "Hola, Ana! "},
		{"Luc", models.LanguageFR, "", "Bonjour, Luc! "},
		{"Jan", models.LanguageDE, "", "Hallo, Jan! "},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang)+"_"+tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := cfgWith(tt.lang, "default")
			cfg.SetMessage(tt.message)

			got, err := NewResolver().Greet(tt.name, cfg)
			if err != nil {
				t.Fatalf("Greet error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Greet(%q, %s) = %q, want %q", tt.name, tt.lang, got, tt.want)
			}
		})
	}
}

func TestGreetRegistryStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style string
		lang  models.Language
		want  string
	}{
		{"formal", models.LanguageEN, "Hello, Sam. Welcome. Have a great day!"},
		{"formal", models.LanguageJA, "こんにちは, Sam. Welcome. 良い一日を！"},
		{"casual", models.LanguageEN, "Hey Sam! Welcome."},
		{"business", models.LanguageDE, "Dear Sam, Welcome. Einen schönen Tag noch!"},
		{"friendly", models.LanguageFR, "Bonjour Sam! Great to see you. Welcome. Bonne journée !"},
		{"celebration", models.LanguageEN, "Hello, Sam! 🎉 Welcome. Have a great day!"},
	}

	for _, tt := range tests {
		t.Run(tt.style+"_"+string(tt.lang), func(t *testing.T) {
			t.Parallel()

			cfg := cfgWith(tt.lang, tt.style)
			cfg.SetMessage("Welcome.")
			got, err := NewResolver().Greet("Sam", cfg)
			if err != nil {
				t.Fatalf("Greet error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Greet = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGreetNilConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	got, err := Greet("Sam", nil)
	if err != nil {
		t.Fatalf("Greet error: %v", err)
	}
	if got != "Hello, Sam! " {
		t.Errorf("Greet(nil config) = %q", got)
	}
}

func TestGreetNameValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		name  string
		msg   string
	}{
		{"empty", "", "Name cannot be empty"},
		{"spaces", "   ", "Name cannot be empty"},
		{"tabs and newlines", "\t\n", "Name cannot be empty"},
		{"too long", strings.Repeat("a", 1001), "Name is too long (max 1000 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			// An invalid config must not matter: the name is checked first.
			cfg := cfgWith("xx", "nonexistent")
			_, err := NewResolver().Greet(tt.name, cfg)

			var ve *validation.Errors
			if !errors.As(err, &ve) {
				t.Fatalf("Greet error = %v, want *validation.Errors", err)
			}
			if got := ve.Fields()["name"]; got != tt.msg {
				t.Errorf("name failure = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestGreetNameLengthCountsCharacters(t *testing.T) {
	t.Parallel()

	// 1000 multibyte characters are accepted even though they exceed 1000 bytes.
	name := strings.Repeat("太", MaxNameLength)
	got, err := Greet(name, nil)
	if err != nil {
		t.Fatalf("Greet error for 1000-character name: %v", err)
	}
	if !strings.Contains(got, name) {
		t.Error("greeting does not contain the name")
	}
}

func TestGreetLookupErrorsPropagate(t *testing.T) {
	t.Parallel()

	r := NewResolver()

	_, err := r.Greet("Sam", cfgWith("xx", "default"))
	var ule *models.UnsupportedLanguageError
	if !errors.As(err, &ule) {
		t.Errorf("unsupported language error = %v (%T)", err, err)
	}

	_, err = r.Greet("Sam", cfgWith(models.LanguageEN, "nonexistent"))
	var nf *template.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("missing template error = %v (%T)", err, err)
	}
}

// stubTemplates serves a single, possibly malformed, template.
type stubTemplates struct {
	info template.Info
}

func (s stubTemplates) Get(string) (template.Info, error) { return s.info, nil }

func TestGreetTemplateFormatError(t *testing.T) {
	t.Parallel()

	r := NewResolver(WithTemplates(stubTemplates{info: template.Info{Pattern: "Hi {title}"}}))
	_, err := r.Greet("Sam", cfgWith(models.LanguageEN, "broken"))
	if !errors.Is(err, template.ErrTemplateFormat) {
		t.Errorf("Greet error = %v, want ErrTemplateFormat", err)
	}
}

func TestGreetDefaultStyleIgnoresRegistryPattern(t *testing.T) {
	t.Parallel()

	r := NewResolver(WithTemplates(stubTemplates{info: template.Info{Pattern: "ignored {name}"}}))
	got, err := r.Greet("Sam", cfgWith(models.LanguageEN, "default"))
	if err != nil {
		t.Fatalf("Greet error: %v", err)
	}
	if got != "Hello, Sam! " {
		t.Errorf("Greet = %q, want built-in default pattern", got)
	}
}

func TestGreetCustomTranslations(t *testing.T) {
	t.Parallel()

	cat := i18n.NewCatalog(map[models.Language]i18n.Translation{
		models.LanguageJA: {Prefix: "やあ", Suffix: "またね"},
	})
	got, err := NewResolver(WithTranslations(cat)).Greet("Taro", cfgWith(models.LanguageJA, "formal"))
	if err != nil {
		t.Fatalf("Greet error: %v", err)
	}
	if got != "やあ, Taro.  またね" {
		t.Errorf("Greet = %q", got)
	}
}

func TestGreetDebugLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewResolver(WithLogger(logging.NewFactory(&buf, logging.FormatText, slog.LevelInfo)))

	if _, err := r.Greet("Sam", cfgWith(models.LanguageEN, "casual")); err != nil {
		t.Fatalf("Greet error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("non-debug call logged: %q", buf.String())
	}

	cfg := cfgWith(models.LanguageEN, "casual")
	cfg.Debug = true
	if _, err := r.Greet("Sam", cfg); err != nil {
		t.Fatalf("Greet error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "generating greeting") || !strings.Contains(out, "source=registry") {
		t.Errorf("debug call log = %q", out)
	}
}

func TestResolveSource(t *testing.T) {
	t.Parallel()

	info := template.Info{Pattern: "{name}"}
	if src := resolveSource("default", info, models.LanguageJA); src.pattern() != cjkDefaultPattern {
		t.Errorf("default/ja pattern = %q", src.pattern())
	}
	for _, lang := range []models.Language{models.LanguageEN, models.LanguageES, models.LanguageFR, models.LanguageDE} {
		if src := resolveSource("default", info, lang); src.pattern() != latinDefaultPattern {
			t.Errorf("default/%s pattern = %q", lang, src.pattern())
		}
	}
	src := resolveSource("formal", info, models.LanguageJA)
	if _, ok := src.(registrySource); !ok || src.pattern() != "{name}" {
		t.Errorf("formal source = %#v", src)
	}
}

func TestGreetAsyncMatchesGreet(t *testing.T) {
	t.Parallel()

	r := NewResolver(WithAsyncDelay(time.Millisecond))
	for _, style := range template.Default().Names() {
		cfg := cfgWith(models.LanguageJA, style)
		cfg.SetMessage("Welcome.")

		want, err := r.Greet("Taro", cfg)
		if err != nil {
			t.Fatalf("Greet(%s) error: %v", style, err)
		}
		got, err := r.GreetAsync(context.Background(), "Taro", cfg)
		if err != nil {
			t.Fatalf("GreetAsync(%s) error: %v", style, err)
		}
		if got != want {
			t.Errorf("GreetAsync(%s) = %q, Greet = %q", style, got, want)
		}
	}
}

func TestGreetAsyncDefaultDelay(t *testing.T) {
	t.Parallel()

	start := time.Now()
	got, err := NewResolver().GreetAsync(context.Background(), "Sam", nil)
	if err != nil {
		t.Fatalf("GreetAsync error: %v", err)
	}
	if got != "Hello, Sam! " {
		t.Errorf("GreetAsync = %q", got)
	}
	if elapsed := time.Since(start); elapsed < DefaultAsyncDelay {
		t.Errorf("GreetAsync returned after %s, want at least %s", elapsed, DefaultAsyncDelay)
	}
}

func TestGreetAsyncTimeout(t *testing.T) {
	t.Parallel()

	r := NewResolver(WithAsyncDelay(time.Second), WithAsyncTimeout(20*time.Millisecond))
	_, err := r.GreetAsync(context.Background(), "Sam", nil)
	if !errors.Is(err, ErrOperationTimeout) {
		t.Fatalf("GreetAsync error = %v, want ErrOperationTimeout", err)
	}
	var te *OperationTimeoutError
	if !errors.As(err, &te) || te.Timeout != 20*time.Millisecond {
		t.Errorf("timeout error = %#v", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		t.Error("timeout error should be distinct from context.DeadlineExceeded")
	}
}

func TestGreetAsyncCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResolver(WithAsyncDelay(time.Second)).GreetAsync(ctx, "Sam", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("GreetAsync error = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrOperationTimeout) {
		t.Error("cancellation must not be reported as a timeout")
	}
}

func TestGreetAsyncPropagatesErrors(t *testing.T) {
	t.Parallel()

	r := NewResolver(WithAsyncDelay(time.Millisecond))
	if _, err := r.GreetAsync(context.Background(), "", nil); !validation.HasField(err, "name") {
		t.Errorf("GreetAsync(\"\") error = %v, want name validation error", err)
	}
	if _, err := r.GreetAsync(context.Background(), "Sam", cfgWith(models.LanguageEN, "nonexistent")); !errors.Is(err, template.ErrTemplateNotFound) {
		t.Errorf("GreetAsync error = %v, want ErrTemplateNotFound", err)
	}
}

func TestProperty_GreetContainsName(t *testing.T) {
	r := NewResolver()
	styles := template.Default().Names()

	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringN(1, MaxNameLength, -1).
			Filter(func(s string) bool { return strings.TrimSpace(s) != "" }).
			Draw(rt, "name")
		cfg := cfgWith(
			rapid.SampledFrom(models.SupportedLanguages()).Draw(rt, "language"),
			rapid.SampledFrom(styles).Draw(rt, "style"),
		)
		cfg.CustomMessage = rapid.Ptr(rapid.String(), true).Draw(rt, "message")

		got, err := r.Greet(name, cfg)
		if err != nil {
			rt.Fatalf("Greet error: %v", err)
		}
		if got == "" {
			rt.Fatal("Greet returned an empty string")
		}
		if !strings.Contains(got, name) {
			rt.Fatalf("Greet(%q) = %q does not contain the name", name, got)
		}
	})
}

func TestProperty_OverlongNamesRejected(t *testing.T) {
	r := NewResolver()

	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringN(MaxNameLength+1, MaxNameLength+50, -1).Draw(rt, "name")
		if strings.TrimSpace(name) == "" {
			return
		}
		_, err := r.Greet(name, nil)
		if !validation.HasField(err, "name") {
			rt.Fatalf("Greet with %d characters error = %v", len([]rune(name)), err)
		}
	})
}
