package textlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l := New("svc")

	assert.Equal(t, "svc", l.Name())
	assert.Equal(t, DefaultLevel, l.Level())
	assert.True(t, l.IsEnabled())
	assert.Empty(t, l.Outputs())

	f, ok := l.Formatter().(*TemplateFormatter)
	require.True(t, ok)
	assert.Equal(t, DefaultTemplate, f.Template())

	// no outputs: logging is silent
	assert.NoError(t, l.Info("nobody listens"))
}

func TestNewLoggersDoNotShareTheDefaultFormatter(t *testing.T) {
	a, b := New("a"), New("b")
	a.Formatter().(*TemplateFormatter).SetTemplate("{message}")

	assert.Equal(t, DefaultTemplate, b.Formatter().(*TemplateFormatter).Template())
	assert.Equal(t, DefaultTemplate, DefaultFormatter().Template())
}

func TestBasic(t *testing.T) {
	l := Basic("svc")

	outputs := l.Outputs()
	require.Len(t, outputs, 1)
	_, ok := outputs[0].(*StreamOutput)
	assert.True(t, ok)
	assert.NoError(t, l.Close())
}

func TestConfigureWithoutArgumentsInstallsDefaultOutput(t *testing.T) {
	t.Run("empty logger", func(t *testing.T) {
		l := New("svc")
		require.NoError(t, l.Configure())

		outputs := l.Outputs()
		require.Len(t, outputs, 1)
		assert.IsType(t, &StreamOutput{}, outputs[0])
		assert.Equal(t, DefaultLevel, l.Level())
		assert.True(t, l.IsEnabled())
	})

	t.Run("existing outputs are kept", func(t *testing.T) {
		a := newRecordingOutput("a")
		l := New("svc")
		require.NoError(t, l.AddOutput(a))
		require.NoError(t, l.Configure())

		assert.Equal(t, []Output{a}, l.Outputs())
	})

	t.Run("set up twice", func(t *testing.T) {
		l := New("svc")
		l.SetUp()
		l.SetUp()
		assert.Len(t, l.Outputs(), 1)
	})
}

func TestConfigureReplacesState(t *testing.T) {
	a, b, c := newRecordingOutput("a"), newRecordingOutput("b"), newRecordingOutput("c")
	f := NewColorFormatter()
	l := New("svc")
	require.NoError(t, l.Configure(WithOutputs(a, b)))
	require.NoError(t, l.Configure(
		WithLevel(Critical),
		WithFormatter(f),
		WithOutputs(c),
		WithEnabled(false),
	))

	assert.Equal(t, Critical, l.Level())
	assert.Same(t, f, l.Formatter())
	assert.Equal(t, []Output{c}, l.Outputs())
	assert.False(t, l.IsEnabled())

	require.NoError(t, l.Configure(WithEnabled(true)))
	assert.True(t, l.IsEnabled())
	assert.Equal(t, Critical, l.Level())
	assert.Same(t, f, l.Formatter())
}

func TestConfigureWithEmptyOutputsInstallsDefault(t *testing.T) {
	l := New("svc")
	require.NoError(t, l.Configure(WithOutputs(newRecordingOutput("a"))))
	require.NoError(t, l.Configure(WithOutputs()))

	outputs := l.Outputs()
	require.Len(t, outputs, 1)
	assert.IsType(t, &StreamOutput{}, outputs[0])
}

func TestConfigureNilOutput(t *testing.T) {
	l := New("svc")
	assert.ErrorIs(t, l.Configure(WithOutputs(newRecordingOutput("a"), nil)), ErrNilOutput)
	assert.Empty(t, l.Outputs())
}

func TestConfigureWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	a := newRecordingOutput("a")
	l := New("svc")
	require.NoError(t, l.Configure(WithFile(path), WithOutputs(a), WithFormatter(messageOnly)))

	outputs := l.Outputs()
	require.Len(t, outputs, 2)
	assert.Same(t, a, outputs[0])
	fo, ok := outputs[1].(*FileOutput)
	require.True(t, ok)
	assert.Equal(t, path, fo.Path())

	require.NoError(t, l.Warn("to file"))
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "WARN to file\n", string(content))

	// Close drops the file output and keeps the caller's
	assert.Equal(t, []Output{a}, l.Outputs())
	assert.False(t, fo.Send("closed\n"))
}

func TestConfigureWithFileAppends(t *testing.T) {
	dir := t.TempDir()
	l := New("svc")
	require.NoError(t, l.Configure(WithFile(filepath.Join(dir, "one.log"))))
	require.NoError(t, l.Configure(WithFile(filepath.Join(dir, "two.log"))))
	t.Cleanup(func() { _ = l.Close() })

	assert.Len(t, l.Outputs(), 2)
}

func TestConfigureWithBadFileChangesNothing(t *testing.T) {
	a := newRecordingOutput("a")
	l := New("svc")
	require.NoError(t, l.Configure(WithOutputs(a)))

	err := l.Configure(
		WithLevel(Error),
		WithOutputs(),
		WithFile(filepath.Join(t.TempDir(), "missing", "app.log")),
	)
	require.Error(t, err)
	assert.Equal(t, DefaultLevel, l.Level())
	assert.Equal(t, []Output{a}, l.Outputs())
}

func TestReplacingOutputsClosesOwnedFiles(t *testing.T) {
	l := New("svc")
	require.NoError(t, l.Configure(WithFile(filepath.Join(t.TempDir(), "app.log"))))
	fo := l.Outputs()[0].(*FileOutput)

	require.NoError(t, l.Configure(WithOutputs(newRecordingOutput("a"))))
	assert.False(t, fo.Send("closed\n"))
}

func TestResetConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	a := newRecordingOutput("a")
	l := New("svc")
	require.NoError(t, l.Configure(
		WithLevel(Fatal),
		WithFormatter(NewColorFormatter()),
		WithOutputs(a),
		WithFile(path),
		WithEnabled(false),
	))
	fo := l.Outputs()[1].(*FileOutput)

	l.ResetConfig()

	assert.Equal(t, DefaultLevel, l.Level())
	assert.True(t, l.IsEnabled())
	f, ok := l.Formatter().(*TemplateFormatter)
	require.True(t, ok)
	assert.Equal(t, DefaultTemplate, f.Template())
	assert.False(t, fo.Send("closed\n"), "owned file output is closed on reset")

	// ResetConfig leaves no outputs, unlike Configure which always installs one.
	assert.Empty(t, l.Outputs())
	require.NoError(t, l.Info("silent"))
	assert.Empty(t, a.Lines())

	require.NoError(t, l.Configure())
	assert.Len(t, l.Outputs(), 1)
}

func TestAddAndRemoveOutputs(t *testing.T) {
	a, b := newRecordingOutput("a"), newRecordingOutput("b")
	l := New("svc")

	assert.ErrorIs(t, l.AddOutput(nil), ErrNilOutput)
	require.NoError(t, l.AddOutput(a))
	require.NoError(t, l.AddOutput(b))
	require.NoError(t, l.AddOutput(a))
	assert.Equal(t, []Output{a, b, a}, l.Outputs())

	assert.True(t, l.RemoveOutput(a))
	assert.Equal(t, []Output{b, a}, l.Outputs())

	assert.False(t, l.RemoveOutput(newRecordingOutput("a")))
	assert.Equal(t, []Output{b, a}, l.Outputs())

	l.RemoveAllOutputs()
	assert.Empty(t, l.Outputs())
}

func TestRemoveOwnedOutputClosesIt(t *testing.T) {
	l := New("svc")
	require.NoError(t, l.Configure(WithFile(filepath.Join(t.TempDir(), "app.log"))))
	fo := l.Outputs()[0]

	assert.True(t, l.RemoveOutput(fo))
	assert.False(t, fo.Send("closed\n"))
}

func TestOutputsReturnsACopy(t *testing.T) {
	a := newRecordingOutput("a")
	l := New("svc")
	require.NoError(t, l.AddOutput(a))

	outputs := l.Outputs()
	outputs[0] = newRecordingOutput("b")
	assert.Equal(t, []Output{a}, l.Outputs())
}

func TestSetFormatterNilRestoresDefault(t *testing.T) {
	l := New("svc")
	l.SetFormatter(NewColorFormatter())
	l.SetFormatter(nil)

	f, ok := l.Formatter().(*TemplateFormatter)
	require.True(t, ok)
	assert.Equal(t, DefaultTemplate, f.Template())
}

func TestUndeclaredBaseLevelIsRejected(t *testing.T) {
	a := newRecordingOutput("a")
	l := newTestLogger(t, a)
	require.NoError(t, l.SetLevel(Warn))

	assert.ErrorIs(t, l.SetLevel(Level(99)), ErrUnknownLevel)
	assert.Equal(t, Warn, l.Level())

	f := NewColorFormatter()
	b := newRecordingOutput("b")
	err := l.Configure(WithLevel(Level(200)), WithFormatter(f), WithOutputs(b), WithEnabled(false))
	assert.ErrorIs(t, err, ErrUnknownLevel)
	assert.Equal(t, Warn, l.Level())
	assert.Same(t, messageOnly, l.Formatter())
	assert.Equal(t, []Output{a}, l.Outputs())
	assert.True(t, l.IsEnabled())

	require.NoError(t, l.Debug("filtered"))
	require.NoError(t, l.Warn("kept"))
	assert.Equal(t, []string{"WARN kept\n"}, a.Lines())
}

func TestTypedNilOutputIsRejected(t *testing.T) {
	a := newRecordingOutput("a")
	l := newTestLogger(t, a)

	assert.ErrorIs(t, l.AddOutput((*FileOutput)(nil)), ErrNilOutput)
	assert.ErrorIs(t, l.Configure(WithOutputs(a, (*StreamOutput)(nil))), ErrNilOutput)
	assert.Equal(t, []Output{a}, l.Outputs())

	require.NoError(t, l.Info("still fine"))
	assert.Equal(t, []string{"INFO still fine\n"}, a.Lines())
}
