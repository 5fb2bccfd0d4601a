package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ArtifactFormat identifies the toolchain that produced an artifact
type ArtifactFormat string

const (
	ArtifactFormatFoundry ArtifactFormat = "foundry"
	ArtifactFormatHardhat ArtifactFormat = "hardhat"
)

// Contract represents a compiled contract discovered in the artifacts directory
type Contract struct {
	Name         string         `json:"name"`
	SourceName   string         `json:"sourceName"`
	ArtifactPath string         `json:"artifactPath,omitempty"`
	Format       ArtifactFormat `json:"format"`
	Artifact     *Artifact      `json:"artifact,omitempty"`
}

// Key returns the fully qualified "source:name" identifier
func (c *Contract) Key() string {
	return fmt.Sprintf("%s:%s", c.SourceName, c.Name)
}

// BytecodeObject represents bytecode information in an artifact.
// Foundry writes an object with an "object" field, Hardhat writes a bare hex string.
type BytecodeObject struct {
	Object         string         `json:"object"`
	SourceMap      string         `json:"sourceMap,omitempty"`
	LinkReferences map[string]any `json:"linkReferences,omitempty"`
}

// UnmarshalJSON accepts both the Foundry object form and the Hardhat string form
func (b *BytecodeObject) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &b.Object)
	}

	type plain BytecodeObject
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*b = BytecodeObject(p)
	return nil
}

// HasCode reports whether the bytecode holds anything deployable
func (b BytecodeObject) HasCode() bool {
	return b.Object != "" && b.Object != "0x"
}

// IsLinked reports whether all library placeholders have been resolved
func (b BytecodeObject) IsLinked() bool {
	return !strings.Contains(b.Object, "__")
}

// Artifact represents a compilation artifact (Foundry or Hardhat layout)
type Artifact struct {
	ABI              json.RawMessage  `json:"abi"`
	Bytecode         BytecodeObject   `json:"bytecode"`
	DeployedBytecode BytecodeObject   `json:"deployedBytecode"`
	Metadata         ArtifactMetadata `json:"metadata"`

	// Hardhat only
	Format       string `json:"_format,omitempty"`
	ContractName string `json:"contractName,omitempty"`
	SourceName   string `json:"sourceName,omitempty"`
}

// ArtifactMetadata represents the metadata section of a Foundry artifact
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// Target returns the source file and contract name the artifact was compiled from
func (a *Artifact) Target() (sourceName, contractName string) {
	if a.ContractName != "" {
		return a.SourceName, a.ContractName
	}
	for source, contract := range a.Metadata.Settings.CompilationTarget {
		return source, contract
	}
	return "", ""
}
