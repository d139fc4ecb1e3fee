package cli

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
)

// surveyPrompter asks for variable values on the terminal. Validators are
// attached to the prompts, so survey re-asks until the answer is
// acceptable.
type surveyPrompter struct{}

func (p *surveyPrompter) AskString(prompt, def, pattern string) (string, error) {
	input := &survey.Input{
		Message: prompt,
		Default: def,
	}

	var opts []survey.AskOpt
	if pattern != "" {
		opts = append(opts, survey.WithValidator(matchPattern(pattern, "value must match pattern: "+pattern)))
	}

	var result string
	if err := survey.AskOne(input, &result, opts...); err != nil {
		return "", err
	}
	return result, nil
}

func (p *surveyPrompter) AskBool(prompt string, def bool) (bool, error) {
	confirm := &survey.Confirm{
		Message: prompt,
		Default: def,
	}

	var result bool
	if err := survey.AskOne(confirm, &result); err != nil {
		return false, err
	}
	return result, nil
}

func (p *surveyPrompter) AskInteger(prompt string, def int64) (int64, error) {
	input := &survey.Input{
		Message: prompt,
		Default: strconv.FormatInt(def, 10),
	}

	var result string
	if err := survey.AskOne(input, &result, survey.WithValidator(integerValidator)); err != nil {
		return 0, err
	}
	if result == "" {
		return def, nil
	}
	return strconv.ParseInt(result, 10, 64)
}

func (p *surveyPrompter) AskChoice(prompt, def string, choices []string) (string, error) {
	sel := &survey.Select{
		Message: prompt,
		Options: choices,
		Default: def,
	}

	var result string
	if err := survey.AskOne(sel, &result); err != nil {
		return "", err
	}
	return result, nil
}

// integerValidator rejects input that does not parse as an integer. Empty
// input is allowed; the caller falls back to the default.
func integerValidator(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if str == "" {
		return nil
	}
	if _, err := strconv.ParseInt(str, 10, 64); err != nil {
		return fmt.Errorf("must be an integer")
	}
	return nil
}

// matchPattern creates a survey validator for regex pattern matching.
func matchPattern(pattern string, message string) survey.Validator {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(val interface{}) error {
			return fmt.Errorf("invalid pattern: %s", pattern)
		}
	}
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if !re.MatchString(str) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
