package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// PromptYesNo prompts the user for a yes/no answer
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptInput prompts the user for text input
func (u *UI) PromptInput(prompt, defaultValue string) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptInputRequired prompts for required input (cannot be empty)
func (u *UI) PromptInputRequired(prompt string) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
	}

	err := survey.AskOne(p, &result, survey.WithValidator(survey.Required))
	return result, err
}

// Validator adapts a plain string validation function to a survey.Validator
func Validator(fn func(string) error) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		return fn(s)
	}
}

// PromptInputWithValidation prompts with custom validation
func (u *UI) PromptInputWithValidation(prompt, defaultValue string, validator survey.Validator) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result, survey.WithValidator(validator))
	return result, err
}
