package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/manifoldco/promptui"
	"github.com/soapiestwaffles/input-gen/internal/pkg/generators"
	"github.com/soapiestwaffles/input-gen/pkg/aws/s3"
)

type bucketItem struct {
	Name         string
	CreationDate *time.Time
}

// SelectBucketsPrompt will create the UI select element for the user to select the bucket inputs are uploaded to
func SelectBucketsPrompt(buckets []s3.Bucket) (string, error) {
	if len(buckets) == 0 {
		return "", fmt.Errorf("no buckets to select from")
	}

	// promptui templates cannot dereference pointers
	items := derefBuckets(buckets)

	templates := &promptui.SelectTemplates{
		Label:    "{{ \"---\" | faint }} {{ . | blue | bold }} {{ \"---\" | faint }}",
		Active:   "\U0001FAA3  {{ .Name | cyan }}",
		Inactive: "   {{ .Name | cyan }}",
		Selected: "\U0001FAA3  {{ .Name | bold | green }}",
		Details: `
------ S3 Bucket Info ------
{{ "Name............:" | faint }} {{ .Name }}
{{ "Creation Date...:" | faint }} {{ .CreationDate }}`,
	}

	prompt := promptui.Select{
		Label:     "Select a bucket to upload inputs to:",
		Items:     items,
		Templates: templates,
		Size:      5,
		Searcher:  bucketSearcher(items),
		Stdout:    &bellSkipper{},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return items[i].Name, nil
}

func derefBuckets(buckets []s3.Bucket) []bucketItem {
	items := make([]bucketItem, 0, len(buckets))
	for _, b := range buckets {
		if b.Name == nil {
			continue
		}
		items = append(items, bucketItem{Name: *b.Name, CreationDate: b.CreationDate})
	}
	return items
}

func bucketSearcher(items []bucketItem) func(input string, index int) bool {
	return func(input string, index int) bool {
		name := strings.ReplaceAll(strings.ToLower(items[index].Name), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")

		return strings.Contains(name, input)
	}
}

// ConfirmOverwrite asks before replacing input files that already exist at location
func ConfirmOverwrite(location string, existing int) bool {
	prompt := promptui.Prompt{
		Label:     overwriteLabel(location, existing),
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		return false
	}

	return confirmed(result)
}

func overwriteLabel(location string, existing int) string {
	return fmt.Sprintf("[%s] %s existing input file(s) will be overwritten, continue", location, humanize.Comma(int64(existing)))
}

func confirmed(result string) bool {
	return strings.ToLower(strings.TrimSpace(result)) == "y"
}

// TypeMatchingPhrase presents the user with a randomized "fakelish" phrase which they have to retype to continue
func TypeMatchingPhrase() bool {
	phrase := generators.GeneratePhrase(4)

	fmt.Println("Please enter the following phrase to continue:", phrase)
	prompt := promptui.Prompt{
		Label: "Enter phrase",
	}

	result, err := prompt.Run()
	if err != nil {
		return false
	}

	return phraseMatches(result, phrase)
}

func phraseMatches(input string, phrase string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == phrase
}

// bellSkipper drops the terminal bell promptui emits on every select movement
type bellSkipper struct{}

func (bs *bellSkipper) Write(b []byte) (int, error) {
	const charBell = 7
	if len(b) == 1 && b[0] == charBell {
		return 0, nil
	}
	return os.Stderr.Write(b)
}

func (bs *bellSkipper) Close() error {
	return os.Stderr.Close()
}
