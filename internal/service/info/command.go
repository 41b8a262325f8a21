package info

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/feathr-version/internal/artifact"
	"github.com/oshokin/feathr-version/internal/version"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// BuildInfo describes the running build.
type BuildInfo struct {
	Version        string `json:"version"         yaml:"version"`
	Commit         string `json:"commit"          yaml:"commit"`
	BuildTime      string `json:"build_time"      yaml:"build_time"`
	GoVersion      string `json:"go_version"      yaml:"go_version"`
	MavenArtifact  string `json:"maven_artifact"  yaml:"maven_artifact"`
	ArtifactSource string `json:"artifact_source" yaml:"artifact_source"`
}

// errUnknownFormat is returned for formats other than text, json and yaml.
var errUnknownFormat = errors.New("unknown output format")

// ParseFormat converts user input to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownFormat, s)
	}
}

// Collect gathers build information, resolving the artifact version through sources.
func Collect(sources ...version.Source) *BuildInfo {
	_, source := version.Resolve(sources...)
	coordinate := artifact.Feathr(version.Chain(sources...))

	return &BuildInfo{
		Version:        version.Get(),
		Commit:         version.Commit,
		BuildTime:      version.BuildTime,
		GoVersion:      runtime.Version(),
		MavenArtifact:  coordinate.String(),
		ArtifactSource: source,
	}
}

// Write renders bi to w in the requested format.
func Write(w io.Writer, bi *BuildInfo, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatText, "":
		data = fmt.Appendf(nil,
			"version: %s\ncommit: %s\nbuilt at: %s\ngo: %s\nmaven artifact: %s (%s)\n",
			bi.Version, bi.Commit, bi.BuildTime, bi.GoVersion, bi.MavenArtifact, bi.ArtifactSource,
		)
	case FormatJSON:
		data, err = marshalJSON(bi)
	case FormatYAML:
		data, err = yaml.Marshal(bi)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("marshal build info: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write build info: %w", err)
	}

	return nil
}

// marshalJSON encodes bi through protojson so field names match the gRPC JSON mapping.
func marshalJSON(bi *BuildInfo) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"version":         bi.Version,
		"commit":          bi.Commit,
		"build_time":      bi.BuildTime,
		"go_version":      bi.GoVersion,
		"maven_artifact":  bi.MavenArtifact,
		"artifact_source": bi.ArtifactSource,
	})
	if err != nil {
		return nil, err
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline:       true,
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(s)
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
