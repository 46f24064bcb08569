package mcp

const serverInstructions = `Ruleboard manages the language rules that feed plan
document generation (ANOC, EOC, Summary of Benefits).

Typical flow:
1. query_rules to find rules, filtering by name, business area or status.
2. update_rule_cell or save_rule_text to edit drafts.
3. publish_rules to release a selection; published rules become read-only
   and their version is bumped to the next whole number.
4. list_activity to review who changed what.

Rules are addressed by their R#### identifier. Published rules cannot be
edited or deleted; copy_rule creates an editable draft from any rule.`
