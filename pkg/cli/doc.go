// Package cli provides the command-line interface of the blog admin console.
//
// Every console page (category, tag, article, role, user) is a view; the
// commands route table events to it:
//   - views: list the registered views and the events they serve
//   - describe: export column, search and form descriptors as JSON or YAML
//   - list: page through records, with search filters and sorting
//   - get: show one record
//   - create, update: send a record built from --set pairs or an interactive form
//   - delete: remove one record, or several in one batch
//   - user status: enable or disable an account
//   - endpoints: show the backend API tree
//   - config: display the effective configuration and where each value came from
//   - version: show blogadmin version
package cli
