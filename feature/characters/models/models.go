package models

import (
	"encoding/json"
	"errors"
	"strings"

	"flatacuties/core/utils"
)

// ErrInvalidCandidate is returned when a create request lacks a name.
var ErrInvalidCandidate = errors.New("character needs a name")

// Character is a single record of the /characters collection.
type Character struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"not null"`
	Image string `json:"image,omitempty"`
	Votes int    `json:"votes" gorm:"not null;default:0"`
}

// TableName sets the table name for GORM.
func (Character) TableName() string {
	return "characters"
}

// wireCharacter mirrors Character with loosely typed numeric fields.
type wireCharacter struct {
	ID    any    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Votes any    `json:"votes"`
}

// UnmarshalJSON decodes a character, normalizing id and votes.
func (c *Character) UnmarshalJSON(data []byte) error {
	var w wireCharacter
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.ID = utils.ToInt(w.ID)
	c.Name = w.Name
	c.Image = w.Image
	c.Votes = utils.ToVotes(w.Votes)
	return nil
}

// Normalize clamps the vote count to a non-negative value.
func (c Character) Normalize() Character {
	if c.Votes < 0 {
		c.Votes = 0
	}
	return c
}

// Candidate is user input for creating a new character.
type Candidate struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Validate trims the candidate and checks that it has a name. The image may be empty.
func (c Candidate) Validate() (Candidate, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Image = strings.TrimSpace(c.Image)
	if c.Name == "" {
		return c, ErrInvalidCandidate
	}
	return c, nil
}

// Record builds the character this candidate describes with the given id and no votes.
func (c Candidate) Record(id int) Character {
	return Character{ID: id, Name: c.Name, Image: c.Image, Votes: 0}
}

// CreateBody is the POST payload sent to the remote.
type CreateBody struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Votes int    `json:"votes"`
}

// VotesBody is the PATCH payload sent to the remote.
type VotesBody struct {
	Votes int `json:"votes"`
}
