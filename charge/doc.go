/*
Charge contract is a metered-access billing ledger deployed in the DDC
side chain.

Charge contract stores prepaid balances of participating accounts, keeps
a per-service table of operation fees and authorizes value transfers
between accounts. Roles, account states and the leader hierarchy used by
the recharge authorization rule are not stored here: they are fetched
from the external Authority contract on every check and are never cached.

Operators mint new value with selfRecharge and distribute it with
recharge. Services register per-selector fees, collect them from payers
with pay and hand accumulated balance over to an operator with
settlement. Every successful state change produces exactly one
notification after all storage writes of the call.

# Contract notifications

Recharged notification. Produced on every successful balance transfer.
The mint path uses the all-zero address as source.

	Recharged:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Paid notification. Produced on every successful payment, including
payments with a zero fee.

	Paid:
	  - name: payer
	    type: Hash160
	  - name: payee
	    type: Hash160
	  - name: selector
	    type: ByteArray
	  - name: amount
	    type: Integer
	  - name: requestId
	    type: Integer

Settled notification. Produced when an operator collects a service
balance.

	Settled:
	  - name: caller
	    type: Hash160
	  - name: service
	    type: Hash160
	  - name: amount
	    type: Integer

FeeSet notification. Produced when a service fee is set or overwritten.

	FeeSet:
	  - name: service
	    type: Hash160
	  - name: selector
	    type: ByteArray
	  - name: amount
	    type: Integer

FeeDeleted notification. Produced when a single fee entry is removed.

	FeeDeleted:
	  - name: service
	    type: Hash160
	  - name: selector
	    type: ByteArray

ServiceDeactivated notification. Produced when a whole service is
deactivated.

	ServiceDeactivated:
	  - name: service
	    type: Hash160
*/
package charge
