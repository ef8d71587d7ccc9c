// Package sts models the credential-exchange response envelopes of the
// security token service and the credential value/expiry handling built on
// top of them.
//
// Token acquisition itself is not done here: an Exchanger supplied by the
// caller performs the wire exchange and returns the decoded response; this
// package decodes envelopes, tracks expiry with a refresh window, and
// provides Provider implementations (Static, Chain, Refreshing) in the
// usual credentials-chain shape.
package sts
