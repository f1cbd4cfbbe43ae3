package components

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

type ButtonVariant string

const (
	ButtonDefault ButtonVariant = ""
	ButtonOutline ButtonVariant = "outline"
	ButtonDanger  ButtonVariant = "danger"
)

const (
	buttonBase  = "btn px-4 py-2 text-sm bg-zinc-900 text-white border-transparent"
	buttonSmall = "px-2 py-1 text-xs"
)

var buttonVariants = map[ButtonVariant]string{
	ButtonOutline: "bg-white text-zinc-900 border-zinc-300",
	ButtonDanger:  "bg-red-600",
}

// Class merges class lists, later entries winning on conflicts.
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}

// ButtonClass layers the variant, the small size and extra over the base
// button utilities.
func ButtonClass(variant ButtonVariant, small bool, extra ...string) string {
	classes := []string{buttonBase, buttonVariants[variant]}
	if small {
		classes = append(classes, buttonSmall)
	}
	return Class(append(classes, extra...)...)
}
