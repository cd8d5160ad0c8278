package issues

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/google/go-github/v45/github"
)

// ClassifyAPIError maps any failure from the GitHub transport into a
// single user-facing message. It is the one exit point for every
// operational failure in every tool; validation errors never reach it.
func ClassifyAPIError(err error) string {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return "Error: API rate limit exceeded. Please wait a few minutes before making more requests."
	}

	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		switch apiErr.Response.StatusCode {
		case 404:
			return "Error: Resource not found. Please check the issue number or repository is correct."
		case 403:
			return "Error: API rate limit exceeded. Please wait a few minutes before making more requests."
		case 422:
			return "Error: Invalid request parameters. Please check your input values."
		default:
			return fmt.Sprintf("Error: GitHub API request failed with status %d. Details: %s",
				apiErr.Response.StatusCode, apiErr.Message)
		}
	}

	if isTimeout(err) {
		return "Error: Request timed out. Please try again."
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Sprintf("Error: Network request failed. Please check your internet connection. Details: %v", urlErr)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Sprintf("Error: Network request failed. Please check your internet connection. Details: %v", opErr)
	}

	return fmt.Sprintf("Error: Unexpected error occurred: %T - %v", err, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
