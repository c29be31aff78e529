package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendWeeklyDigest mails the user their weekly summary text.
func SendWeeklyDigest(to string, summary string) error {
	subject := "Your Weekly Progress Digest"
	body := fmt.Sprintf("Here's how your week went:\n\n%s\n\nKeep it up!", summary)
	return sendEmail(to, subject, body)
}

// SendStreakMilestoneEmail congratulates the user on a streak milestone.
func SendStreakMilestoneEmail(to string, days int) error {
	subject := fmt.Sprintf("%d-Day Streak!", days)
	body := fmt.Sprintf("You've checked in %d days in a row. That consistency is what moves the needle.", days)
	return sendEmail(to, subject, body)
}
