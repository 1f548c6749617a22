// Package util holds small helpers shared by the admin client and the views.
//
//   - TruncateBody caps request and response bodies before they reach a log
//     line or an error message.
package util
