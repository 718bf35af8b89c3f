// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dtos

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type FixType string

const (
	FixTypeCommand    FixType = "command"
	FixTypeFileChange FixType = "fileChange"
	FixTypeMultiStep  FixType = "multiStep"
)

type FileChange struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FixPayload is the concrete remediation of a proposed fix.
// The only implementations are CommandFix, FileChangeFix and MultiStepFix.
type FixPayload interface {
	Type() FixType
	isFixPayload()
}

type CommandFix struct {
	Commands []string
}

type FileChangeFix struct {
	Files []FileChange
}

// MultiStepFix runs all commands before any file is written.
type MultiStepFix struct {
	Commands []string
	Files    []FileChange
}

func (CommandFix) Type() FixType    { return FixTypeCommand }
func (FileChangeFix) Type() FixType { return FixTypeFileChange }
func (MultiStepFix) Type() FixType  { return FixTypeMultiStep }

func (CommandFix) isFixPayload()    {}
func (FileChangeFix) isFixPayload() {}
func (MultiStepFix) isFixPayload()  {}

var ErrEmptyFixPayload = errors.New("fix payload does not contain any step")

func validateCommands(commands []string) error {
	for i, c := range commands {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("command %d is empty", i)
		}
	}
	return nil
}

func validateFiles(files []FileChange) error {
	for i, f := range files {
		if strings.TrimSpace(f.Path) == "" {
			return fmt.Errorf("file change %d has no path", i)
		}
	}
	return nil
}

func NewCommandFix(commands []string) (CommandFix, error) {
	if len(commands) == 0 {
		return CommandFix{}, ErrEmptyFixPayload
	}
	if err := validateCommands(commands); err != nil {
		return CommandFix{}, err
	}
	return CommandFix{Commands: commands}, nil
}

func NewFileChangeFix(files []FileChange) (FileChangeFix, error) {
	if len(files) == 0 {
		return FileChangeFix{}, ErrEmptyFixPayload
	}
	if err := validateFiles(files); err != nil {
		return FileChangeFix{}, err
	}
	return FileChangeFix{Files: files}, nil
}

func NewMultiStepFix(commands []string, files []FileChange) (MultiStepFix, error) {
	if len(commands) == 0 && len(files) == 0 {
		return MultiStepFix{}, ErrEmptyFixPayload
	}
	if err := validateCommands(commands); err != nil {
		return MultiStepFix{}, err
	}
	if err := validateFiles(files); err != nil {
		return MultiStepFix{}, err
	}
	return MultiStepFix{Commands: commands, Files: files}, nil
}

// fixPayloadJSON is the wire and storage representation of every variant.
type fixPayloadJSON struct {
	Type     FixType      `json:"type"`
	Commands []string     `json:"commands,omitempty"`
	Files    []FileChange `json:"files,omitempty"`
}

// NewFixPayload builds the variant named by fixType.
func NewFixPayload(fixType FixType, commands []string, files []FileChange) (FixPayload, error) {
	switch fixType {
	case FixTypeCommand:
		if len(files) > 0 {
			return nil, fmt.Errorf("command fix must not contain file changes")
		}
		return NewCommandFix(commands)
	case FixTypeFileChange:
		if len(commands) > 0 {
			return nil, fmt.Errorf("file change fix must not contain commands")
		}
		return NewFileChangeFix(files)
	case FixTypeMultiStep:
		return NewMultiStepFix(commands, files)
	default:
		return nil, fmt.Errorf("unknown fix type %q", fixType)
	}
}

func marshalFixPayload(p FixPayload) ([]byte, error) {
	switch v := p.(type) {
	case CommandFix:
		return json.Marshal(fixPayloadJSON{Type: FixTypeCommand, Commands: v.Commands})
	case FileChangeFix:
		return json.Marshal(fixPayloadJSON{Type: FixTypeFileChange, Files: v.Files})
	case MultiStepFix:
		return json.Marshal(fixPayloadJSON{Type: FixTypeMultiStep, Commands: v.Commands, Files: v.Files})
	case nil:
		return nil, ErrEmptyFixPayload
	default:
		return nil, fmt.Errorf("unsupported fix payload %T", p)
	}
}

func unmarshalFixPayload(data []byte) (FixPayload, error) {
	var raw fixPayloadJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return NewFixPayload(raw.Type, raw.Commands, raw.Files)
}

// FixEnvelope carries a FixPayload through encoding/json.
type FixEnvelope struct {
	Payload FixPayload
}

func (e FixEnvelope) MarshalJSON() ([]byte, error) {
	if e.Payload == nil {
		return []byte("null"), nil
	}
	return marshalFixPayload(e.Payload)
}

func (e *FixEnvelope) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		e.Payload = nil
		return nil
	}
	p, err := unmarshalFixPayload(data)
	if err != nil {
		return err
	}
	e.Payload = p
	return nil
}
