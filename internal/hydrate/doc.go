// Package hydrate attaches human-readable workspace, project, and client
// names to raw time entries.
//
// The pipeline is a pure function of its input and a Resolver capability; it
// holds no state of its own. Resolution per entry runs workspace → project →
// client, since the client is only reachable through the resolved project. A
// project without a client is a normal outcome, and a single unresolvable
// reference degrades one name field without affecting the rest of the batch.
package hydrate
