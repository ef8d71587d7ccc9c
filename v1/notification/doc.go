// Package notification models bucket event notification: the XML
// configuration document that binds event types to queue, topic and lambda
// targets, and the JSON event records those targets receive.
//
// Configuration is mutated through Add/Remove helpers keyed by target ARN:
//
//	arn := notification.NewArn("aws", "sqs", "us-east-1", "123456789012", "ingest")
//	queue := notification.NewConfig(arn)
//	queue.AddEvents(notification.ObjectCreatedAll)
//	queue.AddFilterPrefix("uploads/")
//
//	var cfg notification.Configuration
//	if err := cfg.AddQueue(queue); err != nil {
//	    return err
//	}
//
// Event records use json-iterator for decoding since listen-notification
// streams deliver one JSON document per line at high rates.
package notification
