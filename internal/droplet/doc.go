// Package droplet provides the droplet operations behind the dop commands.
//
// Every operation follows the same shape: take one snapshot of the account
// through the DigitalOcean API, decide locally what to do, then act. There
// is no reconciliation beyond that single snapshot.
//
// The main operations are:
//   - Create: Create a batch of sequentially named droplets
//   - Destroy: Destroy droplets selected by id, name or prefix
//   - ListAll / ListKeys: Inventory of droplets and SSH keys
//   - FindByName: Resolve a droplet name for "dop ssh"
//
// Error Handling:
//
// Name collisions abort a create batch before anything is sent. During a
// bulk create or destroy the first API error stops the batch and is
// returned; droplets already handled are not rolled back and nothing is
// retried.
//
// Context Support:
//
// All operations accept a context.Context that is passed to every API call
// and interrupts the pause between bulk actions.
package droplet
