package yamlstore

import (
	"bytes"
	"fmt"
	"maps"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"fileauth/internal/domain/entity"
	domainerrors "fileauth/internal/domain/errors"
)

// FormatVersion is the only users file version this store reads and writes.
const FormatVersion = "1.0"

// document mirrors the users file.
type document struct {
	Version string       `yaml:"version"`
	Users   []userRecord `yaml:"users"`
}

// userRecord is the on-disk shape of a user. Field order matches the written file.
type userRecord struct {
	Username     string         `yaml:"username" validate:"required"`
	PasswordHash string         `yaml:"password_hash" validate:"required"`
	Role         string         `yaml:"role" validate:"required,oneof=viewer editor admin"`
	Active       *bool          `yaml:"active,omitempty"`
	Email        string         `yaml:"email,omitempty"`
	FirstName    string         `yaml:"first_name,omitempty"`
	LastName     string         `yaml:"last_name,omitempty"`
	Metadata     map[string]any `yaml:"metadata,omitempty"`
}

func toRecord(user *entity.User) userRecord {
	active := user.Active

	return userRecord{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		Active:       &active,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Metadata:     maps.Clone(user.Metadata),
	}
}

func (r userRecord) toEntity() *entity.User {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &entity.User{
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         entity.Role(r.Role),
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Active:       active,
		Metadata:     r.Metadata,
	}
}

// decode parses users file content. An empty file is an empty store and a
// missing version reads as FormatVersion.
func decode(data []byte, validate *validator.Validate) ([]*entity.User, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, domainerrors.ErrUsersFileMalformed.WrapMessage(err.Error())
	}

	if doc.Version == "" {
		doc.Version = FormatVersion
	}
	if doc.Version != FormatVersion {
		return nil, domainerrors.ErrUsersFileMalformed.WrapMessage(fmt.Sprintf("unsupported version %q", doc.Version))
	}

	users := make([]*entity.User, 0, len(doc.Users))
	seen := make(map[string]struct{}, len(doc.Users))
	for i, record := range doc.Users {
		if err := validate.Struct(record); err != nil {
			return nil, domainerrors.ErrUsersFileMalformed.WrapMessage(fmt.Sprintf("user #%d: %s", i+1, err.Error()))
		}
		if _, dup := seen[record.Username]; dup {
			return nil, domainerrors.ErrUsersFileMalformed.WrapMessage(fmt.Sprintf("duplicate username %q", record.Username))
		}
		seen[record.Username] = struct{}{}
		users = append(users, record.toEntity())
	}

	return users, nil
}

// encode renders users in file order.
func encode(users []*entity.User) ([]byte, error) {
	doc := document{
		Version: FormatVersion,
		Users:   make([]userRecord, 0, len(users)),
	}
	for _, user := range users {
		doc.Users = append(doc.Users, toRecord(user))
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
