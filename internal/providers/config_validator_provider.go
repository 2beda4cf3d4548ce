package providers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gookit/validate"

	"drd/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (v *CnfValidator) Validate() error {
	val := validate.Struct(v.conf)
	if !val.Validate() {
		return errors.New(val.Errors.One())
	}

	// tag rules cannot check that the timezone resolves
	if _, err := time.LoadLocation(v.conf.Engine.Timezone); err != nil {
		return fmt.Errorf("invalid engine timezone %q: %w", v.conf.Engine.Timezone, err)
	}

	return nil
}
